package store

import (
	"encoding/json"
	"errors"

	"thanawya_backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 存储key沿用前端localStorage时代的命名，保证老存档可以直接迁入
const (
	KeyTasks       = "db_tasks"
	KeyCourses     = "db_courses"
	KeySchedule    = "db_schedule"
	KeyResources   = "db_resources"
	KeyStats       = "db_stats"
	KeyChatHistory = "db_chat_history"

	KeyTrack         = "userTrack"
	KeySubTrack      = "userSubTrack"
	KeyExamDate      = "examDate"
	KeyNotifications = "notificationsEnabled"

	KeyPrayerCache     = "cached_prayers"
	KeyPrayerCacheDate = "cached_prayers_date"
	KeyAthkarCounts    = "athkar_counts"
)

// Migration 把一个旧版本的文档JSON升到下一个版本。
// 注册在某个key下的第i个迁移负责 版本i+1 → i+2
type Migration func(raw json.RawMessage) (json.RawMessage, error)

// Store 包装documents表：读失败/解析失败一律回退默认值并记日志，
// 写失败也只记日志——内存里的值在本次会话内始终是权威
type Store struct {
	db         *gorm.DB
	log        *zap.Logger
	migrations map[string][]Migration
}

func NewStore(db *gorm.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		db:         db,
		log:        log,
		migrations: make(map[string][]Migration),
	}
}

// RegisterMigrations 为某个key声明迁移链。当前版本号 = 1 + 链长度
func (s *Store) RegisterMigrations(key string, chain ...Migration) {
	s.migrations[key] = chain
}

func (s *Store) currentVersion(key string) int {
	return 1 + len(s.migrations[key])
}

// Load 读取并解码key对应的文档到dest。文档缺失、版本不认识、
// 解码或迁移失败都返回false，调用方此时应使用默认值
func (s *Store) Load(key string, dest interface{}) bool {
	var doc model.Document
	err := s.db.First(&doc, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("document read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	target := s.currentVersion(key)
	if doc.Version > target {
		// 更新版本的程序写的存档，不猜
		s.log.Warn("document version is newer than this build",
			zap.String("key", key), zap.Int("version", doc.Version))
		return false
	}

	raw := json.RawMessage(doc.Value)
	for v := doc.Version; v < target; v++ {
		migrated, err := s.migrations[key][v-1](raw)
		if err != nil {
			s.log.Warn("document migration failed",
				zap.String("key", key), zap.Int("from", v), zap.Error(err))
			return false
		}
		raw = migrated
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn("document decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save 编码value并整文档覆盖写。失败只记日志，不向上传播
func (s *Store) Save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("document encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	doc := model.Document{
		Key:     key,
		Version: s.currentVersion(key),
		Value:   string(data),
	}
	if err := s.db.Save(&doc).Error; err != nil {
		s.log.Error("document write failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete 删除key对应的文档，key不存在时无副作用
func (s *Store) Delete(key string) {
	if err := s.db.Delete(&model.Document{}, "key = ?", key).Error; err != nil {
		s.log.Error("document delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Load 泛型便捷封装：缺失或解码失败时返回def
func Load[T any](s *Store, key string, def T) T {
	var out T
	if s.Load(key, &out) {
		return out
	}
	return def
}
