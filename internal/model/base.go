package model

import (
	"time"

	"github.com/google/uuid"
)

// Document documents表的一行。每个逻辑集合（任务、课程、日程……）
// 整体序列化为一个JSON文档，对应浏览器localStorage一个key一个值的布局。
// Version是文档的schema版本号，store层据此执行迁移
type Document struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Version   int       `gorm:"not null;default:1" json:"version"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Document) TableName() string {
	return "documents"
}

func GenerateID() string {
	return uuid.New().String()
}
