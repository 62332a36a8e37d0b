package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const viewerSettingsKey = "viewer"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user storage for viewer settings.
func InitPersistence(log *zap.Logger) error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-arena",
	})
	if err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadViewerSettings restores saved toggles into Viewer. Missing storage or
// missing data leaves the defaults.
func LoadViewerSettings(log *zap.Logger) {
	if gdataManager == nil {
		return
	}
	data, err := gdataManager.LoadItem(viewerSettingsKey)
	if err != nil {
		log.Warn("could not load viewer settings", zap.Error(err))
		return
	}
	if data == nil {
		return
	}
	var saved ViewerSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("could not parse viewer settings", zap.Error(err))
		return
	}
	Viewer.ShowRanges = saved.ShowRanges
	Viewer.Fullscreen = saved.Fullscreen
}

// SaveViewerSettings writes the persistent toggles of Viewer.
func SaveViewerSettings(log *zap.Logger) {
	if gdataManager == nil {
		return
	}
	data, err := json.Marshal(Viewer)
	if err != nil {
		log.Warn("could not serialize viewer settings", zap.Error(err))
		return
	}
	if err := gdataManager.SaveItem(viewerSettingsKey, data); err != nil {
		log.Warn("could not save viewer settings", zap.Error(err))
	}
}
