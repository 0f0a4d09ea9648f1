package app

import (
	"fmt"
	"os"
	"time"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/exec"
	"github.com/salsasteve/rainbow/internal/validation"
)

type versioned interface {
	ServerVersion() (string, error)
}

func CheckTarget(t *domain.TargetConfig) (*domain.TargetCheck, error) {
	check := &domain.TargetCheck{CheckedAt: time.Now().UTC()}
	if t != nil {
		check.TargetID = t.ID
	}

	// schema identifier validated here too
	if err := validation.ValidateTarget(t); err != nil {
		check.Error = err.Error()
		return check, err
	}

	start := time.Now()
	if t.Kind == domain.TargetKindCSV {
		err := checkCSVDir(t.DSN)
		check.LatencyMS = time.Since(start).Milliseconds()
		if err != nil {
			check.Error = err.Error()
			return check, err
		}
		check.OK = true
		check.Capabilities = domain.TargetCapabilities{CanCreate: true, CanInsert: true, CanTruncate: true}
		return check, nil
	}

	tgt, err := buildTarget(t)
	if err != nil {
		check.Error = "unsupported target kind"
		return check, err
	}
	if err := tgt.Connect(); err != nil {
		check.Error = err.Error()
		check.LatencyMS = time.Since(start).Milliseconds()
		return check, err
	}
	defer tgt.Close()

	check.OK = true
	check.LatencyMS = time.Since(start).Milliseconds()
	if v, ok := tgt.(versioned); ok {
		if ver, verErr := v.ServerVersion(); verErr == nil {
			check.ServerVer = ver
		}
	}
	check.Capabilities = probeCapabilities(tgt)
	return check, nil
}

func checkCSVDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	f, err := os.CreateTemp(dir, ".rainbow-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func probeCapabilities(tgt exec.Target) domain.TargetCapabilities {
	table := fmt.Sprintf("rainbow_check_%d", time.Now().UnixNano())
	columns := []string{"id"}

	var caps domain.TargetCapabilities
	if err := tgt.CreateTableIfNotExists(table, columns); err != nil {
		return caps
	}
	caps.CanCreate = true

	if err := tgt.InsertBatch(table, columns, [][]string{{"1"}}); err != nil {
		return caps
	}
	caps.CanInsert = true

	if err := tgt.TruncateTable(table); err != nil {
		return caps
	}
	caps.CanTruncate = true
	return caps
}
