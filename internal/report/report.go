package report

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/gruppe-adler/heightmap-raiser/internal/heightmap"
	"github.com/zeebo/blake3"
)

// Report describes a finished raise run
type Report struct {
	Input        string `json:"input"`
	Output       string `json:"output"`
	BitDepth     int    `json:"bitDepth"`
	Altitude     int    `json:"altitude"`
	Depth        int    `json:"depth"`
	UnityHeight  int    `json:"unityHeight"`
	FloorColor   int    `json:"floorColor"`
	Samples      int    `json:"samples"`
	InputBlake3  string `json:"inputBlake3"`
	OutputBlake3 string `json:"outputBlake3"`
}

// Digest returns the hex encoded blake3 hash of the raw sample payload
func Digest(samples heightmap.Samples) string {
	sum := blake3.Sum256(heightmap.Encode(samples))
	return hex.EncodeToString(sum[:])
}

// Write a report as indented JSON
func Write(reportPath string, r Report) error {
	var err error

	// create file
	f, err := os.Create(reportPath)
	if err != nil {
		return err
	}

	// marshal
	bytes, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		f.Close()
		return err
	}

	// write file
	_, err = f.Write(append(bytes, '\n'))
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Read a report from given path
func Read(reportPath string) (Report, error) {
	var val Report

	bytes, err := os.ReadFile(reportPath)
	if err != nil {
		return val, err
	}

	err = json.Unmarshal(bytes, &val)
	return val, err
}
