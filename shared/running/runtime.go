package running

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	userHomeDir string
	configFile  = flag.String("config", "", "Path to the config file")
	version     string
)

func SetVersion(ver string) {
	if len(version) > 0 {
		return
	}
	version = ver
}

func Version() string {
	return version
}

func IsDevVersion() bool {
	return version == "dev"
}

func Init() error {
	var err error
	userHomeDir, err = os.UserHomeDir()
	if err != nil {
		log.Printf("Failed to get user's home directory: %v", err)
		return err
	}

	return nil
}

func UserHomeDir() string {
	return userHomeDir
}

// ConfigFile is the path given with -config, empty if none.
func ConfigFile() string {
	return *configFile
}

func ExecutableName() string {
	return filepath.Base(Executable())
}

var once sync.Once
var executable string

func Executable() string {
	once.Do(func() {
		path, err := os.Executable()
		if err != nil {
			log.Printf("Failed to get executable path: %v", err)
			path = os.Args[0]
		}
		executable = filepath.Clean(path)
	})
	return executable
}

func ExecutablePath() string {
	return filepath.Dir(Executable())
}

// SetHomeDirForTest points UserHomeDir at dir and returns a restore func.
func SetHomeDirForTest(dir string) func() {
	old := userHomeDir
	userHomeDir = dir
	return func() {
		userHomeDir = old
	}
}

// SetConfigFileForTest overrides the -config flag and returns a restore func.
func SetConfigFileForTest(path string) func() {
	old := *configFile
	*configFile = path
	return func() {
		*configFile = old
	}
}
