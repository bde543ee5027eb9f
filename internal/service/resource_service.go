package service

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"thanawya_backend/internal/model"
	"thanawya_backend/internal/state"
	"thanawya_backend/internal/util"
	"thanawya_backend/pkg/logger"
)

// ResourceService 学习资料库：链接类直接登记，文件类走存储层上传。
// 视频文件额外探测时长
type ResourceService struct {
	container *state.Container
	storage   StorageProvider
}

func NewResourceService(container *state.Container, storage StorageProvider) *ResourceService {
	return &ResourceService{container: container, storage: storage}
}

func (s *ResourceService) List() []model.ResourceItem {
	return s.container.Resources()
}

// Add 登记外链资源（link/book等不落盘的类型）
func (s *ResourceService) Add(title string, resType model.ResourceType, url, courseID string) model.ResourceItem {
	item := model.ResourceItem{
		ID:       model.GenerateID(),
		Title:    title,
		Type:     resType,
		URL:      url,
		CourseID: courseID,
	}
	s.container.AddResource(item)
	return item
}

// Upload 上传文件资源。视频类先落到临时文件探测时长再交给存储层
func (s *ResourceService) Upload(title string, resType model.ResourceType, courseID string, file *multipart.FileHeader) (model.ResourceItem, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := fmt.Sprintf("%s%s", model.GenerateID(), ext)

	var duration float64
	if resType == model.ResourceVideo {
		if !util.IsAllowedVideoExt(ext) {
			return model.ResourceItem{}, fmt.Errorf("不支持的视频格式: %s", ext)
		}
		d, err := s.probeDuration(file)
		if err != nil {
			// 探测失败不阻塞上传，时长留0
			logger.Log.Warn("视频时长探测失败", zap.String("file", file.Filename), zap.Error(err))
		} else {
			duration = d
		}
	}

	url, err := s.storage.Upload(file, objectName)
	if err != nil {
		return model.ResourceItem{}, err
	}

	item := model.ResourceItem{
		ID:              model.GenerateID(),
		Title:           title,
		Type:            resType,
		URL:             url,
		CourseID:        courseID,
		DurationSeconds: duration,
	}
	s.container.AddResource(item)
	return item, nil
}

// probeDuration 把上传内容写到临时文件，ffprobe读时长
func (s *ResourceService) probeDuration(file *multipart.FileHeader) (float64, error) {
	src, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "probe-*"+filepath.Ext(file.Filename))
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.ReadFrom(src); err != nil {
		return 0, err
	}
	return util.ProbeVideoDuration(tmp.Name())
}

// Delete 删除登记；上传类资源连文件一起删，删文件失败只记日志
func (s *ResourceService) Delete(id string) {
	for _, r := range s.container.Resources() {
		if r.ID == id {
			if strings.HasPrefix(r.URL, "/uploads/") {
				object := strings.TrimPrefix(r.URL, "/uploads/")
				if err := s.storage.Delete(object); err != nil {
					logger.Log.Warn("删除资源文件失败", zap.String("object", object), zap.Error(err))
				}
			}
			break
		}
	}
	s.container.DeleteResource(id)
}
