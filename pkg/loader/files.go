package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/network"
)

// NetworkFiles names the four CSV inputs of one modal network.
type NetworkFiles struct {
	Params string `yaml:"params"`
	Links  string `yaml:"links"`
	ODs    string `yaml:"od_pairs"`
	Paths  string `yaml:"paths"`
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

// LoadNetwork reads the four CSV files and assembles the network.
func LoadNetwork(mode network.Mode, files NetworkFiles, logger logging.Logger) (*network.Network, error) {
	params, err := readFile(files.Params, ReadParamRecords)
	if err != nil {
		return nil, err
	}
	links, err := readFile(files.Links, ReadLinkRecords)
	if err != nil {
		return nil, err
	}
	ods, err := readFile(files.ODs, ReadODRecords)
	if err != nil {
		return nil, err
	}
	paths, err := readFile(files.Paths, ReadPathRecords)
	if err != nil {
		return nil, err
	}

	return BuildNetwork(mode, NetworkInput{
		Params: params,
		Links:  links,
		ODs:    ods,
		Paths:  paths,
	}, logger)
}
