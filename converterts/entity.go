package converters

import "github.com/riftline/procchain/core"

// ApplyEntityFilter runs spec.md §4.5 over every node in g: a node
// whose retained evidence (alarms + real, non-virtual logs) is
// exclusively of a single non-process category is retyped to that
// category's entity nodeType. Nodes with no evidence, mixed-category
// evidence, or evidence that doesn't match any category's opType rule
// are left as NodeTypeProcess.
//
// A file_entity formed exclusively from delete events additionally
// blanks the label of every edge targeting it (SPEC_FULL Open
// Question 3: file-delete edges carry no label, everything else stays
// "连接"/"connected").
func ApplyEntityFilter(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	for _, n := range g.Nodes() {
		nodeType, isDelete, matched := classify(n)
		if !matched {
			continue
		}
		n.NodeType = nodeType

		if isDelete {
			for _, pred := range g.Predecessors(n.NodeID) {
				_ = g.AddEdge(pred, n.NodeID, core.EdgeLabelNone)
			}
		}
	}

	return nil
}

// classify inspects every alarm and every non-virtual log on n and
// reports the single entity category all of them agree on, or
// matched=false if the evidence is empty, mixed, or doesn't satisfy
// any category's logType/opType rule.
func classify(n *core.GraphNode) (nodeType string, isDelete bool, matched bool) {
	count := 0
	matched = true

	consider := func(logType, opType string) bool {
		cat, del, ok := evalEvidence(logType, opType)
		if !ok {
			return false
		}
		if count == 0 {
			nodeType, isDelete = cat, del
		} else if cat != nodeType {
			return false
		} else {
			isDelete = isDelete && del
		}
		count++

		return true
	}

	for _, a := range n.Alarms {
		if !consider(a.LogType, a.OpType) {
			return "", false, false
		}
	}
	for _, l := range n.Logs {
		if l.IsVirtual() {
			continue
		}
		if !consider(l.LogType, l.OpType) {
			return "", false, false
		}
	}

	if count == 0 {
		return "", false, false
	}

	return nodeType, isDelete, true
}

// evalEvidence applies spec.md §4.5's four category rules to one
// logType/opType pair.
func evalEvidence(logType, opType string) (nodeType string, isDelete bool, ok bool) {
	switch logType {
	case "file":
		switch opType {
		case "create", "write":
			return core.NodeTypeFileEntity, false, true
		case "delete":
			return core.NodeTypeFileEntity, true, true
		}
	case "network":
		if opType == "connect" {
			return core.NodeTypeNetworkEntity, false, true
		}
	case "domain":
		if opType == "connect" {
			return core.NodeTypeDomainEntity, false, true
		}
	case "registry":
		if opType == "setValue" {
			return core.NodeTypeRegistryEntity, false, true
		}
	}

	return "", false, false
}
