package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	File       string   `json:"file" yaml:"file" toml:"file"`
	Preset     string   `json:"preset" yaml:"preset" toml:"preset"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	Price      float64  `json:"price" yaml:"price" toml:"price"`
	Cost       float64  `json:"cost" yaml:"cost" toml:"cost"`
	Discount   string   `json:"discount" yaml:"discount" toml:"discount"`
	Adherence2 string   `json:"adherence2" yaml:"adherence2" toml:"adherence2"`
	Adherence3 string   `json:"adherence3" yaml:"adherence3" toml:"adherence3"`
	Period     string   `json:"period" yaml:"period" toml:"period"`
}
