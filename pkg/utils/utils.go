package utils

import "os"

const DefaultOutputDirName = "pagesplit-output"

func GetDefaultOutputDir() string {
	tmpDir, err := os.MkdirTemp("", "pagesplit-output-*")
	if err != nil {
		// If we can't create a temp directory, fall back to local directory
		return DefaultOutputDirName
	}
	return tmpDir
}
