package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"thanawya_backend/internal/config"
	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/store"
	"thanawya_backend/pkg/logger"
	"thanawya_backend/pkg/monitoring"
)

// 每个时刻对应的经文，展示在倒计时下方
var prayerMessages = map[string]string{
	"Fajr":    "أَقِمِ الصَّلَاةَ لِدُلُوكِ الشَّمْسِ إِلَىٰ غَسَقِ اللَّيْلِ وَقُرْآنَ الْفَجْرِ ۖ إِنَّ قُرْآنَ الْفَجْرِ كَانَ مَشْهُودًا",
	"Sunrise": "وَالضُّحَىٰ * وَاللَّيْلِ إِذَا سَجَىٰ * مَا وَدَّعَكَ رَبُّكَ وَمَا قَلَىٰ",
	"Dhuhr":   "حَافِظُوا عَلَى الصَّلَوَاتِ وَالصَّلَاةِ الْوُسْطَىٰ وَقُومُوا لِلَّهِ قَانِتِينَ",
	"Asr":     "وَالْعَصْرِ * إِنَّ الْإِنسَانَ لَفِي خُسْرٍ * إِلَّا الَّذِينَ آمَنُوا وَعَمِلُوا الصَّالِحَاتِ",
	"Maghrib": "فَسُبْحَانَ اللَّهِ حِينَ تُمْسُونَ وَحِينَ تُصْبِحُونَ",
	"Isha":    "أَلَا بِذِكْرِ اللَّهِ تَطْمَئِنُّ الْقُلُوبُ",
}

const defaultPrayerMessage = "أَلَا بِذِكْرِ اللَّهِ تَطْمَئِنُّ الْقُلُوبُ"

// TomorrowLabel 今天的时刻全部过完后显示的倒计时文案
const TomorrowLabel = "غداً"

// NextPrayerStatus 倒计时轮询的聚合回包
type NextPrayerStatus struct {
	Prayers       []model.PrayerTime `json:"prayers"`
	NextIndex     int                `json:"nextIndex"`
	TimeRemaining string             `json:"timeRemaining"`
	Message       string             `json:"message"`
	AlarmFired    bool               `json:"alarmFired"`
}

// PrayerService 礼拜时刻表：外部API按天取一次，redis/文档双层缓存，
// 闹钟对同一时刻只响一次
type PrayerService struct {
	cfg       config.PrayerConfig
	container *state.Container
	rdb       *redis.Client // 可为nil，降级到文档缓存
	client    *http.Client

	mu             sync.Mutex
	alarmPlayedFor string // 已响过闹钟的时刻key，天切换时清空
	alarmDay       string
}

func NewPrayerService(cfg config.PrayerConfig, container *state.Container, rdb *redis.Client) *PrayerService {
	return &PrayerService{
		cfg:       cfg,
		container: container,
		rdb:       rdb,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type aladhanResponse struct {
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// fetchTimings 调Aladhan API拿当天的六个时刻
func (s *PrayerService) fetchTimings(ctx context.Context, lat, lng float64, day time.Time) ([]model.PrayerTime, error) {
	dateStr := fmt.Sprintf("%d-%d-%d", day.Day(), int(day.Month()), day.Year())
	url := fmt.Sprintf("%s/v1/timings/%s?latitude=%f&longitude=%f&method=%d",
		s.cfg.BaseURL, dateStr, lat, lng, s.cfg.Method)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aladhan API status %d", resp.StatusCode)
	}

	var body aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Data.Timings) == 0 {
		return nil, fmt.Errorf("aladhan API returned no timings")
	}

	prayers := make([]model.PrayerTime, 0, len(model.PrayerKeys))
	for _, key := range model.PrayerKeys {
		raw := body.Data.Timings[key]
		if raw == "" {
			return nil, fmt.Errorf("aladhan API missing timing for %s", key)
		}
		var hh, mm int
		if _, err := fmt.Sscanf(raw, "%d:%d", &hh, &mm); err != nil {
			return nil, fmt.Errorf("bad timing %q for %s", raw, key)
		}
		at := time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, day.Location())
		prayers = append(prayers, model.PrayerTime{
			Key:  key,
			Name: model.PrayerNames[key],
			Time: fmt.Sprintf("%02d:%02d", hh, mm),
			At:   at.Format(time.RFC3339),
		})
	}
	return prayers, nil
}

func (s *PrayerService) redisKey(day string) string {
	return "prayers:" + day
}

// Timings 当天的时刻表。命中缓存直接回，未命中取API并写缓存；
// API失败时退回上次缓存（哪怕是旧的），彻底没有就返回空表
func (s *PrayerService) Timings(ctx context.Context, lat, lng *float64) []model.PrayerTime {
	latitude, longitude := s.cfg.DefaultLatitude, s.cfg.DefaultLongitude
	if lat != nil && lng != nil {
		latitude, longitude = *lat, *lng
	}

	today := time.Now().Format("2006-01-02")

	// redis层
	if s.rdb != nil {
		if data, err := s.rdb.Get(ctx, s.redisKey(today)).Bytes(); err == nil {
			var cached []model.PrayerTime
			if json.Unmarshal(data, &cached) == nil && len(cached) > 0 {
				monitoring.PrayerFetchCounter.WithLabelValues("cache").Inc()
				return cached
			}
		}
	}

	// 文档层
	cachedDate := s.container.Pref(store.KeyPrayerCacheDate, "")
	if cachedDate == today {
		var cached []model.PrayerTime
		if s.container.LoadDoc(store.KeyPrayerCache, &cached) && len(cached) > 0 {
			monitoring.PrayerFetchCounter.WithLabelValues("cache").Inc()
			return cached
		}
	}

	prayers, err := s.fetchTimings(ctx, latitude, longitude, time.Now())
	if err != nil {
		logger.Log.Warn("礼拜时刻API请求失败，退回旧缓存", zap.Error(err))
		var stale []model.PrayerTime
		if s.container.LoadDoc(store.KeyPrayerCache, &stale) {
			monitoring.PrayerFetchCounter.WithLabelValues("fallback").Inc()
			return stale
		}
		monitoring.PrayerFetchCounter.WithLabelValues("fallback").Inc()
		return []model.PrayerTime{}
	}

	monitoring.PrayerFetchCounter.WithLabelValues("api").Inc()

	s.container.SaveDoc(store.KeyPrayerCache, prayers)
	s.container.SetPref(store.KeyPrayerCacheDate, today)
	if s.rdb != nil {
		if data, err := json.Marshal(prayers); err == nil {
			s.rdb.Set(ctx, s.redisKey(today), data, 24*time.Hour)
		}
	}
	return prayers
}

// formatCountdown H:MM:SS，小时不补零
func formatCountdown(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
}

// nextIndex 第一个严格晚于now的时刻下标，全过完返回-1
func nextIndex(prayers []model.PrayerTime, now time.Time) int {
	for i, p := range prayers {
		at, err := time.Parse(time.RFC3339, p.At)
		if err != nil {
			continue
		}
		if at.After(now) {
			return i
		}
	}
	return -1
}

// Status 倒计时+闹钟判定，后台每秒tick一次，接口按需调用。
// 闹钟规则：距下一时刻<=提前量且通知开着且这个时刻今天还没响过
func (s *PrayerService) Status(ctx context.Context) NextPrayerStatus {
	prayers := s.Timings(ctx, nil, nil)
	now := time.Now()

	st := NextPrayerStatus{Prayers: prayers, NextIndex: -1, Message: defaultPrayerMessage}
	if len(prayers) == 0 {
		return st
	}

	idx := nextIndex(prayers, now)
	if idx == -1 {
		// 今天的都过了，指回明天的第一个
		st.NextIndex = 0
		st.TimeRemaining = TomorrowLabel
		if msg, ok := prayerMessages[prayers[0].Key]; ok {
			st.Message = msg
		}
		return st
	}

	st.NextIndex = idx
	at, _ := time.Parse(time.RFC3339, prayers[idx].At)
	diff := at.Sub(now)
	st.TimeRemaining = formatCountdown(diff)
	if msg, ok := prayerMessages[prayers[idx].Key]; ok {
		st.Message = msg
	}

	lead := time.Duration(s.cfg.AlarmLeadMinutes) * time.Minute
	if diff > 0 && diff <= lead && s.notificationsEnabled() {
		st.AlarmFired = s.tryFireAlarm(prayers[idx].Key, now)
	}
	return st
}

// tryFireAlarm 同一时刻只允许响一次，天切换时复位
func (s *PrayerService) tryFireAlarm(prayerKey string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := now.Format("2006-01-02")
	if s.alarmDay != day {
		s.alarmDay = day
		s.alarmPlayedFor = ""
	}
	if s.alarmPlayedFor == prayerKey {
		return false
	}
	s.alarmPlayedFor = prayerKey
	logger.Log.Info("礼拜闹钟触发",
		zap.String("prayer", prayerKey),
		zap.String("name", model.PrayerNames[prayerKey]))
	return true
}

func (s *PrayerService) notificationsEnabled() bool {
	return s.container.Pref(store.KeyNotifications, "false") == "true"
}

// SetNotifications 开关闹钟通知
func (s *PrayerService) SetNotifications(enabled bool) {
	v := "false"
	if enabled {
		v = "true"
	}
	s.container.SetPref(store.KeyNotifications, v)
}

func (s *PrayerService) NotificationsEnabled() bool {
	return s.notificationsEnabled()
}

// RunTicker 后台每秒评估一次闹钟，ctx取消即退出。
// 接口没人轮询时闹钟依然按点触发（日志+计数）
func (s *PrayerService) RunTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Status(ctx)
		}
	}
}
