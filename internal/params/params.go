package params

import (
	"os"
	"sync"

	"github.com/inovacc/rostr/internal/application"
)

var (
	once       sync.Once
	AppdataDir string
)

func init() {
	once.Do(getAppDataDir)
}

func getAppDataDir() {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		panic(err)
	}

	AppdataDir = dir

	if err := os.MkdirAll(AppdataDir, os.ModePerm); err != nil {
		panic(err)
	}
}
