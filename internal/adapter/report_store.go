package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

// ReportStore persists provisioning reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

type yamlReportStore struct {
	fs FSAdapter
}

// NewReportStore returns a ReportStore that writes YAML through fs.
func NewReportStore(fs FSAdapter) ReportStore {
	return &yamlReportStore{fs: fs}
}

func (s *yamlReportStore) SaveReport(path m.Path, report m.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (s *yamlReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
