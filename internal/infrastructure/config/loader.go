package config

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/rotisserie/eris"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Engine *EngineConfig
	Stage  *StageConfig // nil when the engine names no stage
}

// Loader loads configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadEngine loads engine.json over the defaults and validates it
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	data, err := fs.ReadFile(l.fsys, "engine.json")
	if err != nil {
		return nil, eris.Wrap(err, "failed to read engine.json")
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, eris.Wrap(err, "failed to parse engine.json")
	}
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid engine.json")
	}

	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read stage %s", name)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, eris.Wrapf(err, "failed to parse stage %s", name)
	}

	return &cfg, nil
}

// LoadAll loads engine.json and the stage it names
func (l *Loader) LoadAll() (*GameConfig, error) {
	engine, err := l.LoadEngine()
	if err != nil {
		return nil, err
	}

	gc := &GameConfig{Engine: engine}
	if engine.World.Stage != "" {
		stage, err := l.LoadStage(engine.World.Stage)
		if err != nil {
			return nil, err
		}
		gc.Stage = stage
	}

	return gc, nil
}
