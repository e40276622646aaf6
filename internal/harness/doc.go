// Package harness runs conformance scenarios against catalogue checks.
//
// A scenario names one check from the catalogue and lists cases: values
// the check must accept or reject. Rejections may additionally pin the
// failure path and a fragment of the failure message, so a scenario
// documents diagnostics as well as verdicts.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: players
//	description: "Player records from the save file"
//	check: player
//	cases:
//	  - name: complete
//	    value: { name: ada, level: 3, tags: [] }
//	    expect: pass
//	  - name: level out of range
//	    value: { name: ada, level: 0, tags: [] }
//	    expect: fail
//	    path: .level
//	    reason: "between 1 and 100"
//	  - name: exported save
//	    file: fixtures/save.cue
//	    expect: pass
//
// Case files are resolved relative to the scenario file and decoded by
// extension (JSON, YAML or CUE). Unknown fields are rejected, so a typo
// such as "expects:" fails loudly instead of silently skipping a check.
//
// Scenarios never define checks. Composite checks are built in Go and
// registered in the catalogue under the name the scenario refers to.
//
// # Golden Reports
//
// Result.Report renders a stable, ID-free summary of a run. Tests compare
// it against testdata/golden/<scenario>.golden with RunWithGolden.
package harness
