package updater

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"m3u-channel-curator/config"
	"m3u-channel-curator/fetch"
	"m3u-channel-curator/logger"
	"m3u-channel-curator/playlist"
)

// Updater runs the fetch → parse → filter → serialize pipeline and,
// when scheduled, refreshes the generated files on a cron cadence.
type Updater struct {
	sync.Mutex
	ctx    context.Context
	logger logger.Logger
	Cron   *cron.Cron
}

func New(ctx context.Context) *Updater {
	return &Updater{
		ctx:    ctx,
		logger: logger.Default,
	}
}

// Initialize builds an Updater with a cron schedule from SYNC_CRON
// (default midnight daily) and, unless SYNC_ON_BOOT=false, kicks off an
// initial refresh in the background.
func Initialize(ctx context.Context) (*Updater, error) {
	instance := New(ctx)

	cronSched := os.Getenv("SYNC_CRON")
	if strings.TrimSpace(cronSched) == "" {
		instance.logger.Log("SYNC_CRON not initialized. Defaulting to 0 0 * * * (12am every day).")
		cronSched = "0 0 * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(cronSched, func() {
		go instance.refresh(ctx)
	})
	if err != nil {
		instance.logger.Errorf("Error initializing background processes: %v", err)
		return nil, err
	}
	c.Start()
	instance.Cron = c

	syncOnBoot := os.Getenv("SYNC_ON_BOOT")
	if strings.TrimSpace(syncOnBoot) == "" {
		syncOnBoot = "true"
	}
	if syncOnBoot == "true" {
		instance.logger.Log("SYNC_ON_BOOT enabled. Starting initial playlist refresh.")
		go instance.refresh(ctx)
	}

	return instance, nil
}

func (instance *Updater) refresh(ctx context.Context) {
	// Ensure only one refresh is running at a time.
	instance.Lock()
	defer instance.Unlock()

	select {
	case <-ctx.Done():
		return
	default:
		if err := instance.runPipeline(ctx); err != nil {
			instance.logger.Errorf("Background process: Error refreshing playlist: %v", err)
		}
	}
}

// RunOnce executes the pipeline a single time. Either both output
// documents are written, or neither is.
func (instance *Updater) RunOnce(ctx context.Context) error {
	instance.Lock()
	defer instance.Unlock()

	return instance.runPipeline(ctx)
}

func (instance *Updater) runPipeline(ctx context.Context) error {
	cfg := config.GetConfig()

	content, err := fetch.Source(ctx, cfg.SourceURL)
	if err != nil {
		return fmt.Errorf("fetch error: %w", err)
	}

	channels := playlist.Parse(content)
	instance.logger.Logf("Parsed %d channels from source", len(channels))

	if len(cfg.FilterKeywords) > 0 {
		channels = playlist.SelectByKeywords(channels, cfg.FilterKeywords)
		instance.logger.Logf("Channels matching filter: %d", len(channels))
	}

	m3uContent := playlist.GenerateM3U(channels, playlist.GenerateOptions{
		HeaderText:    cfg.HeaderText,
		FooterText:    config.DefaultFooterText,
		IncludeFooter: cfg.IncludeFooter,
	})

	catalogContent, err := playlist.GenerateCatalog(channels, time.Now(), playlist.CatalogOptions{})
	if err != nil {
		return fmt.Errorf("catalog error: %w", err)
	}

	if err := os.MkdirAll(cfg.DataPath, 0755); err != nil {
		return fmt.Errorf("error creating data path: %w", err)
	}

	if err := writeAtomic(config.GetPlaylistPath(), []byte(m3uContent)); err != nil {
		return fmt.Errorf("error writing playlist: %w", err)
	}
	if err := writeAtomic(config.GetCatalogPath(), catalogContent); err != nil {
		return fmt.Errorf("error writing catalog: %w", err)
	}

	instance.logger.Logf("Wrote %s and %s (%d channels)",
		filepath.Base(config.GetPlaylistPath()), filepath.Base(config.GetCatalogPath()), len(channels))
	return nil
}

// writeAtomic writes to a temp file and renames it into place so
// readers never observe a half-written document.
func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".new"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
