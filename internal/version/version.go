package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X github.com/p5d/RustyRougelike/internal/version.BuildDate=...".
// Без BuildCommit коммит берется из VCS-меток, которые go build вшивает сам.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// buildEpoch - день отсчета номеров сборок.
var buildEpoch = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

// readBuildInfo подменяется в тестах.
var readBuildInfo = debug.ReadBuildInfo

// VersionInfo - метаданные сборки для `rogue version --json` и /version.
type VersionInfo struct {
	BuildID    int    `json:"build_id"`
	BuildDate  string `json:"build_date"`
	Commit     string `json:"commit"`
	Dirty      bool   `json:"dirty,omitempty"`
	GoVersion  string `json:"go_version,omitempty"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID - номер сборки для текущего BuildDate.
func CalculateBuildID() (int, error) {
	return buildIDFor(BuildDate)
}

// buildIDFor - число полных дней от эпохи до date.
func buildIDFor(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// fromBuildInfo дополняет info тем, что знает сам бинарник.
func fromBuildInfo(info *VersionInfo) {
	bi, ok := readBuildInfo()
	if !ok {
		return
	}
	info.GoVersion = bi.GoVersion
	for _, kv := range bi.Settings {
		switch kv.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = kv.Value
			}
		case "vcs.modified":
			info.Dirty = kv.Value == "true"
		}
	}
}

// Info собирает VersionInfo. Безопасно вызывать в любой момент.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
	}
	fromBuildInfo(&info)

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String - строка для лога и `rogue version`.
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("Rusty Roguelike, build unknown (%s)", info.Error)
	}

	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	} else if len(commit) > 12 {
		commit = commit[:12]
	}
	if info.Dirty {
		commit += "+dirty"
	}
	return fmt.Sprintf("Rusty Roguelike, build %d (%s) commit[%s]", info.BuildID, info.BuildDate, commit)
}
