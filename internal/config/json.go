package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Source struct {
		Kind           string   `json:"kind"`
		HTTPAddress    string   `json:"http_address"`
		DSN            string   `json:"dsn"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"source,omitempty"`

	Storage struct {
		StatePath string `json:"state_path"`
	} `json:"storage,omitempty"`

	Sync struct {
		Interval Duration `json:"interval"`
	} `json:"sync,omitempty"`

	Notify struct {
		Sound   bool `json:"sound"`
		Desktop bool `json:"desktop"`
	} `json:"notify,omitempty"`

	Print struct {
		Copies      int    `json:"copies"`
		Paper       string `json:"paper"`
		Orientation string `json:"orientation"`
		OutputDir   string `json:"output_dir"`
	} `json:"print,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Source: Source{
			Kind:           jsonCfg.Source.Kind,
			HTTPAddress:    jsonCfg.Source.HTTPAddress,
			DSN:            jsonCfg.Source.DSN,
			RequestTimeout: time.Duration(jsonCfg.Source.RequestTimeout),
		},
		Storage: Storage{
			StatePath: jsonCfg.Storage.StatePath,
		},
		Sync: Sync{
			Interval: time.Duration(jsonCfg.Sync.Interval),
		},
		Notify: Notify{
			Sound:   jsonCfg.Notify.Sound,
			Desktop: jsonCfg.Notify.Desktop,
		},
		Print: Print{
			Copies:      jsonCfg.Print.Copies,
			Paper:       jsonCfg.Print.Paper,
			Orientation: jsonCfg.Print.Orientation,
			OutputDir:   jsonCfg.Print.OutputDir,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
