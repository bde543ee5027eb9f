package model

// PrayerKeys 六个时刻的规范顺序
var PrayerKeys = []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// PrayerNames 阿拉伯语显示名
var PrayerNames = map[string]string{
	"Fajr":    "الفجر",
	"Sunrise": "الشروق",
	"Dhuhr":   "الظهر",
	"Asr":     "العصر",
	"Maghrib": "المغرب",
	"Isha":    "العشاء",
}

type PrayerTime struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Time string `json:"time"` // HH:MM，24小时制
	At   string `json:"at"`   // 解析到当天的绝对时间，ISO-8601
}

// DhikrItem 记诵条目：目标遍数到了即算完成
type DhikrItem struct {
	Text   string `json:"text"`
	Count  int    `json:"count"`
	Source string `json:"source"`
	Virtue string `json:"virtue,omitempty"`
}
