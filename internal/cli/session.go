package cli

import (
	"github.com/valdemar/taskman/internal/config"
	"github.com/valdemar/taskman/internal/manager"
	"github.com/valdemar/taskman/internal/store"
)

// session bundles what every command needs: the effective config, the
// restored manager, and where to save it back.
type session struct {
	cfg      config.Config
	mgr      *manager.Manager
	savePath string
}

func loadSession() (*session, error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	savePath, err := cfg.ResolveSaveFile()
	if err != nil {
		return nil, err
	}

	snap, found, err := store.Load(savePath)
	if err != nil {
		return nil, err
	}
	mgr := manager.New()
	if found {
		mgr = manager.Restore(snap)
	}

	return &session{cfg: cfg, mgr: mgr, savePath: savePath}, nil
}

func (s *session) save() error {
	return store.Save(s.savePath, s.mgr.Snapshot())
}
