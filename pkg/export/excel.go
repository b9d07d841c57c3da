// Package export writes analysis results to Excel workbooks for compliance
// reporting.
package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/depscope/depscope/pkg/compliance"
	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/license"
	"github.com/depscope/depscope/pkg/ort"
)

const (
	summarySheet  = "Summary"
	packagesSheet = "Packages"
	licensesSheet = "Licenses"
)

var packageHeaders = []string{
	"Type", "Namespace", "Name", "Version", "License", "Risk",
	"Vulnerabilities", "Description", "Homepage",
}

// Workbook writes a compliance report for the result to path.
func Workbook(path string, result *ort.Result, classifier *license.Classifier) error {
	const op = "export.Workbook"

	if classifier == nil {
		classifier = license.NewClassifier(nil)
	}
	status := compliance.Evaluate(result, classifier)

	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", summarySheet)
	writeSummary(file, status)

	if _, err := file.NewSheet(packagesSheet); err != nil {
		return errors.E(op, errors.KindInternal, "cannot create sheet", err)
	}
	writePackages(file, result, classifier)

	if _, err := file.NewSheet(licensesSheet); err != nil {
		return errors.E(op, errors.KindInternal, "cannot create sheet", err)
	}
	writeLicenses(file, status.Stats)

	if err := file.SaveAs(path); err != nil {
		return errors.E(op, errors.KindStorage, "cannot save workbook", err)
	}
	return nil
}

func writeSummary(file *excelize.File, status compliance.Status) {
	rows := [][]interface{}{
		{"State", string(status.State)},
		{"Message", status.Message},
		{"Total", status.Stats.Total},
		{"Permissive", status.Stats.Permissive},
		{"Weak copyleft", status.Stats.WeakCopyleft},
		{"Strong copyleft", status.Stats.StrongCopyleft},
		{"Unknown", status.Stats.Unknown},
		{"Analyzer issues", status.IssueCount},
		{"Vulnerabilities", status.VulnerabilityCount},
	}
	for i := range rows {
		file.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &rows[i])
	}
}

func writePackages(file *excelize.File, result *ort.Result, classifier *license.Classifier) {
	for i, header := range packageHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(packagesSheet, cell, header)
	}

	vulns := result.VulnerabilityIndex()

	row := 2
	for _, pkg := range result.Packages() {
		lic, _ := pkg.EffectiveLicense()
		rowData := []interface{}{
			pkg.ID.Type,
			pkg.ID.Namespace,
			pkg.ID.Name,
			pkg.ID.Version,
			lic,
			string(classifier.Classify(lic)),
			len(vulns[pkg.ID.String()]),
			pkg.Description,
			pkg.HomepageURL,
		}
		file.SetSheetRow(packagesSheet, fmt.Sprintf("A%d", row), &rowData)
		row++
	}
}

func writeLicenses(file *excelize.File, stats compliance.LicenseStats) {
	headers := []interface{}{"License", "Count"}
	file.SetSheetRow(licensesSheet, "A1", &headers)

	licenses := make([]string, 0, len(stats.ByLicense))
	for lic := range stats.ByLicense {
		licenses = append(licenses, lic)
	}
	sort.Strings(licenses)

	for i, lic := range licenses {
		rowData := []interface{}{lic, stats.ByLicense[lic]}
		file.SetSheetRow(licensesSheet, fmt.Sprintf("A%d", i+2), &rowData)
	}
}
