package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/rtrash/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

const (
	MoverExec = "exec"
	MoverXDG  = "xdg"

	DefaultTrashTool = "trash"
)

type Config struct {
	Core    Core    `yaml:"core"`
	Host    Host    `yaml:"host"`
	Logging Logging `yaml:"logging"`
}

type Core struct {
	TrashTool    string   `yaml:"trash_tool" validate:"required"`
	Mover        string   `yaml:"mover" validate:"required,validMover"`
	TrashDir     string   `yaml:"trash_dir" validate:"omitempty,validDirPath"`
	CopyFallback bool     `yaml:"copy_fallback"`
	Protect      []string `yaml:"protect" validate:"dive,validGlob"`
	Verbose      bool     `yaml:"verbose"`
}

// Host configures how the terminal host talks to the editor it stands in for.
// Every command is run with bash.
type Host struct {
	SelectionCommand string `yaml:"selection_command"`
	TabsCommand      string `yaml:"tabs_command"`
	CloseTabCommand  string `yaml:"close_tab_command" validate:"required_with=TabsCommand"`
	RefreshCommand   string `yaml:"refresh_command"`
	ConfirmDiscard   bool   `yaml:"confirm_discard"`
}

type Logging struct {
	Enabled  bool     `yaml:"enabled"`
	Level    string   `yaml:"level" validate:"validLevel"`
	Rotation Rotation `yaml:"rotation"`
}

type Rotation struct {
	MaxSize  string `yaml:"max_size" validate:"validSize"`
	MaxFiles int    `yaml:"max_files" validate:"gte=0"`
}

// Default returns the configuration used for any field the file leaves out
func Default() Config {
	return Config{
		Core: Core{
			TrashTool:    DefaultTrashTool,
			Mover:        MoverExec,
			CopyFallback: true,
			Protect: []string{
				"/",
				"/home",
				"/usr",
				"/etc",
				"/var",
				"/tmp",
			},
		},
		Host: Host{
			ConfirmDiscard: true,
		},
		Logging: Logging{
			Enabled: false,
			Level:   "info",
			Rotation: Rotation{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}

func defaultContents() string {
	content, _ := yaml.Marshal(Default())
	return string(content)
}

type configError struct {
	configPath string
	err        error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't read the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.RTRASH_CONFIG_PATH,
		defaultContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (e configError) Unwrap() error {
	return e.err
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

type parser struct {
	validate *validator.Validate
}

func newParser() parser {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("validMover", validateMover)
	_ = v.RegisterValidation("validDirPath", validateDirPath)
	_ = v.RegisterValidation("validGlob", validateGlob)
	_ = v.RegisterValidation("validSize", validateSize)
	_ = v.RegisterValidation("validLevel", validateLevel)

	return parser{validate: v}
}

// ensureConfigFile writes the default config to path unless it already exists
func (p parser) ensureConfigFile(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	slog.Warn("creating config file as it does not exist", "config-file", path)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(defaultContents())
	return err
}

func (p parser) readConfigFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{configPath: path, err: err}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Core.Mover = strings.ToLower(strings.TrimSpace(cfg.Core.Mover))

	if err := p.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return cfg, fmt.Errorf("validation error: field %s, %q is invalid", verrs[0].Namespace(), verrs[0].Value())
		}
		return cfg, err
	}

	return cfg, nil
}

// Parse reads the config file at path. An empty path means the default
// location, which is created with default contents when missing.
func Parse(path string) (Config, error) {
	p := newParser()

	if path == "" {
		path = env.RTRASH_CONFIG_PATH
		if err := p.ensureConfigFile(path); err != nil {
			return Config{}, parsingError{err: configError{configPath: path, err: err}}
		}
	}
	slog.Debug("config file found", "config-file", path)

	cfg, err := p.readConfigFile(path)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}
