package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/postalsys/toc/internal/config"
)

func printDefaultConfig() error {
	data, err := yaml.Marshal(config.DefaultServerConfig())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
