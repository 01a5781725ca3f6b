package cluster

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/daylayout/internal/model"
)

func ev(id string, start, end int) model.Event {
	return model.Event{ID: id, Start: start, End: end}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Build(nil))
	assert.Empty(t, Build([]model.Event{}))
}

func TestBuild_SingleEvent(t *testing.T) {
	t.Parallel()
	clusters := Build([]model.Event{ev("1", 60, 120)})
	require.Len(t, clusters, 1)
	assert.Equal(t, model.Cluster{ev("1", 60, 120)}, clusters[0])
}

func TestBuild_DiscoveryOrder(t *testing.T) {
	t.Parallel()

	// Arrange: event 4 is scanned first, so its cluster comes first even
	// though event 1 starts earliest.
	events := []model.Event{
		ev("4", 610, 670),
		ev("2", 540, 600),
		ev("1", 30, 150),
		ev("3", 570, 630),
	}

	// Act
	clusters := Build(events)

	// Assert
	require.Len(t, clusters, 2)
	assert.Equal(t, model.Cluster{ev("2", 540, 600), ev("3", 570, 630), ev("4", 610, 670)}, clusters[0])
	assert.Equal(t, model.Cluster{ev("1", 30, 150)}, clusters[1])
}

func TestBuild_TransitiveChain(t *testing.T) {
	t.Parallel()

	// a and c never overlap directly but are connected through b.
	events := []model.Event{ev("c", 100, 150), ev("a", 0, 60), ev("b", 50, 110)}

	clusters := Build(events)

	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"a", "b", "c"}, clusters[0].IDs())
}

func TestBuild_TouchingEndpointsCluster(t *testing.T) {
	t.Parallel()

	clusters := Build([]model.Event{ev("a", 0, 30), ev("b", 30, 60), ev("c", 61, 90)})

	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"a", "b"}, clusters[0].IDs())
	assert.Equal(t, []string{"c"}, clusters[1].IDs())
}

func TestBuild_SortsByStartThenDuration(t *testing.T) {
	t.Parallel()

	events := []model.Event{
		ev("long", 0, 160),
		ev("mid", 0, 120),
		ev("short", 0, 59),
		ev("late", 60, 160),
	}

	clusters := Build(events)

	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"short", "mid", "long", "late"}, clusters[0].IDs())
}

func TestBuild_EqualKeysKeepInputOrder(t *testing.T) {
	t.Parallel()

	events := []model.Event{ev("x", 10, 20), ev("y", 10, 20), ev("z", 10, 20)}

	for range 20 {
		clusters := Build(events)
		require.Len(t, clusters, 1)
		assert.Equal(t, []string{"x", "y", "z"}, clusters[0].IDs())
	}
}

func TestBuild_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	events := []model.Event{ev("b", 50, 60), ev("a", 0, 55)}
	snapshot := append([]model.Event(nil), events...)

	Build(events)

	assert.Equal(t, snapshot, events)
}

func TestBuild_NoStateBetweenCalls(t *testing.T) {
	t.Parallel()

	first := Build([]model.Event{ev("1", 0, 10), ev("2", 100, 110)})
	second := Build([]model.Event{ev("1", 0, 10), ev("2", 100, 110)})

	assert.Equal(t, first, second)
	require.Len(t, second, 2)
}

func TestBuild_PartitionProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for round := range 50 {
		events := randomEvents(rng, 1+rng.Intn(40))

		clusters := Build(events)

		t.Run(fmt.Sprintf("round %d", round), func(t *testing.T) {
			// Partition law: every event exactly once.
			seen := make(map[string]int)
			for _, c := range clusters {
				for _, e := range c {
					seen[e.ID]++
				}
			}
			require.Len(t, seen, len(events))
			for id, n := range seen {
				assert.Equal(t, 1, n, "event %s appears %d times", id, n)
			}

			// No overlap across clusters.
			for i := range clusters {
				for j := i + 1; j < len(clusters); j++ {
					for _, a := range clusters[i] {
						for _, b := range clusters[j] {
							assert.False(t, model.Overlaps(a, b), "%s and %s overlap across clusters", a.ID, b.ID)
						}
					}
				}
			}

			// Sorted by (start, duration).
			for _, c := range clusters {
				for k := 1; k < len(c); k++ {
					prev, cur := c[k-1], c[k]
					ok := prev.Start < cur.Start || (prev.Start == cur.Start && prev.Duration() <= cur.Duration())
					assert.True(t, ok, "cluster not sorted at %s -> %s", prev.ID, cur.ID)
				}
			}

			// Discovery order: each cluster's earliest input position increases.
			position := make(map[string]int, len(events))
			for i, e := range events {
				position[e.ID] = i
			}
			last := -1
			for _, c := range clusters {
				first := len(events)
				for _, e := range c {
					first = min(first, position[e.ID])
				}
				assert.Greater(t, first, last)
				last = first
			}
		})
	}
}

func randomEvents(rng *rand.Rand, n int) []model.Event {
	events := make([]model.Event, n)
	for i := range events {
		start := rng.Intn(model.DayMinutes - 1)
		end := start + 1 + rng.Intn(min(90, model.DayMinutes-start))
		events[i] = ev(fmt.Sprintf("e%d", i), start, end)
	}
	return events
}
