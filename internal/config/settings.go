package config

import (
	"github.com/vvka-141/vsh/pkg/vsh"
)

// Environment variables read by Resolve.
const (
	EnvVFS    = "VSH_VFS"
	EnvScript = "VSH_SCRIPT"
	EnvUser   = "VSH_USER"
	EnvHost   = "VSH_HOST"
)

// Settings is the effective configuration of a session.
type Settings struct {
	VFS          string
	Script       string
	User         string
	Host         string
	HistoryLimit int
	Banner       bool
	KeyHelp      bool
}

// Flags carries values given on the command line. Empty strings mean
// "not given".
type Flags struct {
	VFS      string
	Script   string
	NoBanner bool
	KeyHelp  bool
}

// Fallback supplies identity values when nothing else does, typically the
// OS user and hostname.
type Fallback struct {
	User string
	Host string
}

// Resolve merges the configuration sources.
// Priority (highest to lowest): flags > environment > vsh.yaml > fallback > defaults.
// file may be nil; getenv is usually os.Getenv.
func Resolve(flags Flags, getenv func(string) string, file *FileConfig, fallback Fallback) Settings {
	if file == nil {
		file = &FileConfig{}
	}

	s := Settings{
		VFS:          first(flags.VFS, getenv(EnvVFS), file.VFS),
		Script:       first(flags.Script, getenv(EnvScript), file.Script),
		User:         first(getenv(EnvUser), file.Prompt.User, fallback.User, vsh.DefaultUser),
		Host:         first(getenv(EnvHost), file.Prompt.Host, fallback.Host, vsh.DefaultHost),
		HistoryLimit: vsh.DefaultHistoryLimit,
		Banner:       true,
		KeyHelp:      flags.KeyHelp || file.KeyHelp,
	}
	if file.HistoryLimit > 0 {
		s.HistoryLimit = file.HistoryLimit
	}
	if file.Banner != nil {
		s.Banner = *file.Banner
	}
	if flags.NoBanner {
		s.Banner = false
	}
	return s
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
