package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	File       string
	Preset     string
	ReportName string
	ReportType []string
	Dir        string
	Analytics  bool
	Adherence  bool
	Tracking   bool
	Price      float64
	Cost       float64
	Discount   string
	Adherence2 string
	Adherence3 string
	Period     string
}

// Sections reports which dashboard sections were requested. When no section
// flag was passed, every section renders.
func (a *CLIArgs) Sections() (analytics, adherence, tracking bool) {
	if !a.Analytics && !a.Adherence && !a.Tracking {
		return true, true, true
	}
	return a.Analytics, a.Adherence, a.Tracking
}
