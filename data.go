package step

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"

	"github.com/boynton/step/util"
)

// Data is a loosely typed configuration document read from JSON or YAML.
type Data struct {
	value interface{}
}

func NewData() *Data {
	return &Data{}
}

func (data *Data) String() string {
	return util.Pretty(data.value)
}

func DataToFile(data *Data, path string) error {
	var raw []byte
	var err error
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		raw, err = yaml.Marshal(data.value)
	default:
		raw = []byte(data.String())
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0660)
}

func DataFromFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var value map[string]interface{}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &value)
	default:
		err = json.Unmarshal(raw, &value)
	}
	if err != nil {
		return nil, err
	}
	return &Data{value: value}, nil
}

func (data *Data) Put(key string, value interface{}) {
	if data.value == nil {
		data.value = make(map[string]interface{}, 0)
	}
	m := data.AsMap()
	if m != nil {
		m[key] = value
	}
}

func (data *Data) AsMap() map[string]interface{} {
	return util.AsMap(data.value)
}

func (data *Data) Get(keys ...string) interface{} {
	return data.get(keys)
}

func (data *Data) get(keys []string) interface{} {
	if data == nil {
		return nil
	}
	var v interface{} = data.value
	for _, key := range keys {
		m := util.AsMap(v)
		if m == nil {
			return nil
		}
		v = m[key]
	}
	return v
}

func (data *Data) Has(keys ...string) bool {
	return data.get(keys) != nil
}

func (data *Data) GetString(keys ...string) string {
	return util.AsString(data.get(keys))
}

func (data *Data) GetBool(keys ...string) bool {
	return util.AsBool(data.get(keys))
}

func (data *Data) GetInt(keys ...string) int {
	return util.AsInt(data.get(keys))
}

func (data *Data) GetStrings(keys ...string) []string {
	return util.AsStringArray(data.get(keys))
}

// Config is the typed view of a configuration document used by the command
// line tools.
type Config struct {
	Inline              bool
	Author              string
	Organization        string
	OriginatingSystem   string
	Authorization       string
	PreprocessorVersion string
	LogLevel            string
}

func ConfigFromData(data *Data) *Config {
	return &Config{
		Inline:              data.GetBool("inline"),
		Author:              data.GetString("author"),
		Organization:        data.GetString("organization"),
		OriginatingSystem:   data.GetString("originating_system"),
		Authorization:       data.GetString("authorization"),
		PreprocessorVersion: data.GetString("preprocessor_version"),
		LogLevel:            data.GetString("log_level"),
	}
}

// ApplyHeaderDefaults fills the FILE_NAME fields of f that are empty.
func (c *Config) ApplyHeaderDefaults(f *File) {
	fill := func(field *string, value string) {
		if *field == "" {
			*field = value
		}
	}
	fill(&f.Author, c.Author)
	fill(&f.Organization, c.Organization)
	fill(&f.OriginatingSystem, c.OriginatingSystem)
	fill(&f.Authorization, c.Authorization)
	fill(&f.PreprocessorVersion, c.PreprocessorVersion)
}
