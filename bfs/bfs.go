package bfs

import (
	"context"
	"fmt"

	"github.com/riftline/procchain/core"
)

// queueItem pairs a node ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	dir     Direction
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID, walking
// outgoing edges (Down) or incoming edges (Up).
func BFS(g *core.Graph, startID string, dir Direction, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	w := &walker{
		graph:   g,
		dir:     dir,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, g.NodeCount()),
		visited: make(map[string]bool, g.NodeCount()),
		res: &BFSResult{
			Order:  make([]string, 0, g.NodeCount()),
			Depth:  make(map[string]int, g.NodeCount()),
			Parent: make(map[string]string, g.NodeCount()),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

func (w *walker) neighborsOf(id string) []string {
	if w.dir == Up {
		return w.graph.Predecessors(id)
	}

	return w.graph.Successors(id)
}

func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.neighborsOf(item.id) {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
