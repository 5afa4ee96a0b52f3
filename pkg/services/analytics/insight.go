package analytics

import (
	"math"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
)

// BuildInsight computes the drilldown figures for one program: lifetime trial
// volume, recent accuracy, the most recent session date, and a short
// latest-first session snapshot with per-session accuracy.
func BuildInsight(program domain.Program, settings Settings) domain.ProgramInsight {
	insight := domain.ProgramInsight{
		RecentAccuracy: RecentAccuracy(program, settings),
		Snapshot:       make([]domain.SessionStat, 0, settings.SnapshotSessionCount),
	}

	for _, session := range program.Sessions {
		insight.TotalTrials += session.Trials()
		if insight.LastSession == nil || session.Date.After(*insight.LastSession) {
			date := session.Date
			insight.LastSession = &date
		}
	}

	snapshot := program.Sessions
	if len(snapshot) > settings.SnapshotSessionCount {
		snapshot = snapshot[len(snapshot)-settings.SnapshotSessionCount:]
	}
	for i := len(snapshot) - 1; i >= 0; i-- {
		session := snapshot[i]
		accuracy := 0
		if session.Trials() > 0 {
			accuracy = int(math.Round(100 * float64(session.Correct) / float64(session.Trials())))
		}
		insight.Snapshot = append(insight.Snapshot, domain.SessionStat{
			Session:  session,
			Accuracy: accuracy,
		})
	}

	return insight
}
