package main

import (
	"time"

	"github.com/BurntSushi/toml"
)

// config holds defaults for command flags. Values come from the built-in
// defaults, then the -config file, then explicit flags.
type config struct {
	// Container is one of vector, deque or list
	Container string `toml:"container"`
	// Duration bounds stress and contention runs
	Duration time.Duration `toml:"duration"`
	// Elements is the number of pushes made by fill
	Elements int `toml:"elements"`
	// Workers is the number of concurrent pushers of fill
	Workers int `toml:"workers"`
	// Readers and Writers size the contention run
	Readers int `toml:"readers"`
	Writers int `toml:"writers"`
	// WaitThreshold makes slower acquisitions logged as warnings, zero disables
	WaitThreshold time.Duration `toml:"wait_threshold"`
}

func defaultConfig() *config {
	return &config{
		Container:     "vector",
		Duration:      10 * time.Second,
		Elements:      4096,
		Workers:       8,
		Readers:       8,
		Writers:       2,
		WaitThreshold: 0,
	}
}

// load overlays the fields present in the TOML file at path
func (c *config) load(path string) error {
	_, err := toml.DecodeFile(path, c)

	return err
}
