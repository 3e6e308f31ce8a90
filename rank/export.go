package rank

import (
	"log"
	"strconv"
	"strings"
)

// TSV formats the snapshot's standings as tab-separated rows under a fixed
// header. Teams mode exports the team ranking; full mode exports the finish
// order with the highlighted winner starred.
func (snap Snapshot) TSV() string {
	var rows []string
	switch snap.Mode {
	case ModeTeams:
		rows = make([]string, 0, len(snap.Teams)+1)
		rows = append(rows, "Rank\tTeam\tAvg Score")
		for i, st := range snap.Teams {
			rows = append(rows, strings.Join([]string{strconv.Itoa(i + 1), st.Name, FormatAverage(st.Average)}, "\t"))
		}
	default:
		rows = make([]string, 0, len(snap.Winners)+len(snap.Marbles)+1)
		rows = append(rows, "Rank\tName\tWinner")
		rank := 0
		for _, list := range [][]Marble{snap.Winners, snap.Marbles} {
			for _, m := range list {
				mark := ""
				if rank == snap.WinnerRank {
					mark = starGlyph
				}
				rank++
				rows = append(rows, strings.Join([]string{strconv.Itoa(rank), m.Name, mark}, "\t"))
			}
		}
	}
	return strings.Join(rows, "\n")
}

// Export copies snap to the clipboard in the background. Without a
// clipboard it does nothing. A successful write sends a confirmation to the
// OnMessage sink; a failed one is only logged.
func (r *Renderer) Export(snap Snapshot) {
	if r.clipboard == nil {
		return
	}
	tsv := snap.TSV()
	msg := r.tr("The result has been copied")
	if snap.Mode == ModeTeams {
		msg = r.tr("Team ranking copied")
	}

	r.writes.Add(1)
	go func() {
		defer r.writes.Done()
		if err := r.clipboard.WriteText(tsv); err != nil {
			log.Printf("rank: clipboard export: %v", err)
			return
		}
		r.notify(msg)
	}()
}
