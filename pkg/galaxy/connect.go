package galaxy

import (
	"math"

	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/rng"
)

// Link joins two constellations through one star of each. From and To index
// Galaxy.Constellations; FromStar and ToStar index the stars of those
// constellations.
type Link struct {
	From     int `json:"from" bson:"from"`
	To       int `json:"to" bson:"to"`
	FromStar int `json:"from_star" bson:"from_star"`
	ToStar   int `json:"to_star" bson:"to_star"`
}

// Joins reports whether l connects a and b in either direction.
func (l Link) Joins(a, b int) bool {
	return (l.From == a && l.To == b) || (l.From == b && l.To == a)
}

// ConnectNearest links the constellations into a spanning tree.
//
// Starting from the first constellation, it repeatedly picks the shortest
// center distance between a connected and an unconnected constellation and
// links them at their closest pair of stars. It returns len(constellations)-1
// links; fewer than two constellations yield none.
func ConnectNearest(constellations []Constellation) []Link {
	n := len(constellations)
	if n < 2 {
		return nil
	}

	connected := make([]bool, n)
	order := make([]int, 1, n)
	connected[0] = true
	links := make([]Link, 0, n-1)

	for len(order) < n {
		from, to := -1, -1
		best := math.Inf(1)
		for _, i := range order {
			for j := range constellations {
				if connected[j] {
					continue
				}
				if d := geom.Dist(constellations[i].Center, constellations[j].Center); d < best {
					best, from, to = d, i, j
				}
			}
		}
		links = append(links, closestLink(constellations, from, to))
		connected[to] = true
		order = append(order, to)
	}
	return links
}

// closestLink anchors a link between a and b at their closest stars. The
// first pair found wins ties.
func closestLink(constellations []Constellation, a, b int) Link {
	l := Link{From: a, To: b}
	best := math.Inf(1)
	for i, p := range constellations[a].Stars {
		for j, q := range constellations[b].Stars {
			if d := geom.Dist(p, q); d < best {
				best, l.FromStar, l.ToStar = d, i, j
			}
		}
	}
	return l
}

// AddSupplemental adds extra links between constellations that are not
// already directly connected.
//
// Every ordered pair (a, b) with a != b is considered. The pair is skipped if
// a link between the two already exists, including one added earlier in this
// pass; otherwise a link is added when src.Probability() exceeds
// centerDistance/threshold. An unordered pair therefore gets a second chance
// when its first direction fails. Pairs at or beyond threshold never link.
func AddSupplemental(constellations []Constellation, links []Link, threshold float64, src rng.Source) []Link {
	type pair struct{ a, b int }
	key := func(a, b int) pair {
		if a > b {
			a, b = b, a
		}
		return pair{a, b}
	}

	joined := make(map[pair]bool, len(links))
	for _, l := range links {
		joined[key(l.From, l.To)] = true
	}

	for a := range constellations {
		for b := range constellations {
			if a == b || joined[key(a, b)] {
				continue
			}
			d := geom.Dist(constellations[a].Center, constellations[b].Center)
			if src.Probability() > d/threshold {
				links = append(links, closestLink(constellations, a, b))
				joined[key(a, b)] = true
			}
		}
	}
	return links
}
