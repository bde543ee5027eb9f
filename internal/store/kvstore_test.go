package store

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"

	"thanawya_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Document{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewStore(db, nil)
}

type sampleDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := sampleDoc{Name: "الفيزياء", Count: 3}
	s.Save("sample", in)

	var out sampleDoc
	if !s.Load("sample", &out) {
		t.Fatalf("Load returned false for existing key")
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestLoadMissingKey(t *testing.T) {
	s := newTestStore(t)

	var out sampleDoc
	if s.Load("nope", &out) {
		t.Fatalf("Load returned true for missing key")
	}
}

func TestLoadCorruptValueFallsBackToDefault(t *testing.T) {
	s := newTestStore(t)

	// 直接写坏一行，模拟磁盘上损坏的存档
	s.db.Save(&model.Document{Key: "broken", Version: 1, Value: "{not json"})

	def := sampleDoc{Name: "default", Count: 7}
	got := Load(s, "broken", def)
	if got != def {
		t.Fatalf("expected default %+v, got %+v", def, got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	s.Save("k", sampleDoc{Name: "a", Count: 1})
	s.Save("k", sampleDoc{Name: "b", Count: 2})

	var out sampleDoc
	if !s.Load("k", &out) {
		t.Fatalf("Load returned false after overwrite")
	}
	if out.Name != "b" || out.Count != 2 {
		t.Fatalf("expected latest value, got %+v", out)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	s.Save("k", sampleDoc{Name: "x"})
	s.Delete("k")
	s.Delete("k") // 不存在时无副作用

	var out sampleDoc
	if s.Load("k", &out) {
		t.Fatalf("Load returned true after delete")
	}
}

func TestMigrationChainUpgradesOldDocument(t *testing.T) {
	s := newTestStore(t)

	// 版本1的老格式：count是字符串
	type v1Doc struct {
		Name  string `json:"name"`
		Count string `json:"count"`
	}
	old, _ := json.Marshal(v1Doc{Name: "قديم", Count: "5"})
	s.db.Save(&model.Document{Key: "migr", Version: 1, Value: string(old)})

	s.RegisterMigrations("migr", func(raw json.RawMessage) (json.RawMessage, error) {
		var o v1Doc
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, err
		}
		count, err := strconv.Atoi(o.Count)
		if err != nil {
			return nil, err
		}
		return json.Marshal(sampleDoc{Name: o.Name, Count: count})
	})

	var out sampleDoc
	if !s.Load("migr", &out) {
		t.Fatalf("Load returned false for migratable document")
	}
	if out.Name != "قديم" || out.Count != 5 {
		t.Fatalf("migration produced %+v", out)
	}

	// 写回之后版本号应该是当前版本（1+链长=2）
	s.Save("migr", out)
	var doc model.Document
	if err := s.db.First(&doc, "key = ?", "migr").Error; err != nil {
		t.Fatalf("read raw document: %v", err)
	}
	if doc.Version != 2 {
		t.Fatalf("expected stored version 2, got %d", doc.Version)
	}
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	s := newTestStore(t)

	val, _ := json.Marshal(sampleDoc{Name: "future"})
	s.db.Save(&model.Document{Key: "fut", Version: 9, Value: string(val)})

	var out sampleDoc
	if s.Load("fut", &out) {
		t.Fatalf("Load accepted a document newer than this build")
	}
}
