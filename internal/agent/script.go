package agent

import (
	"fmt"

	"github.com/p5d/RustyRougelike/internal/domain"
)

var scriptMoves = map[rune][2]int{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
}

// ParseScript разбирает сценарий в vi-нотации: hjklyubn - шаги,
// '.' - ожидание, 'g' - подобрать предмет. Пробелы игнорируются.
func ParseScript(script string) ([]domain.Command, error) {
	var cmds []domain.Command
	for i, r := range script {
		if d, ok := scriptMoves[r]; ok {
			cmds = append(cmds, domain.Move(d[0], d[1]))
			continue
		}
		switch r {
		case '.':
			cmds = append(cmds, domain.Command{Action: domain.ActionWait})
		case 'g':
			cmds = append(cmds, domain.Command{Action: domain.ActionPickup})
		case ' ', '\t', '\n':
		default:
			return nil, fmt.Errorf("script: unknown command %q at %d", r, i)
		}
	}
	return cmds, nil
}
