// id_fn.go — synthetic node/log ID generation for Phase B's virtual
// parents, adapted from the teacher's deterministic-index-to-ID scheme
// idea: every generator here is pure and deterministic for the same
// input, so the same evidence always produces the same synthetic ID.
package builder

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/riftline/procchain/evidence"
)

// VirtualRootParentID returns the synthetic self-parent root ID for
// origParent, per spec.md §4.2: VIRTUAL_ROOT_PARENT_<hex8(md5(origParent
// + "_ROOT_PARENT"))>. crypto/md5 is used because the spec names this
// exact algorithm as part of the wire-visible ID scheme, not merely "a
// hash" (see DESIGN.md).
func VirtualRootParentID(origParent string) string {
	sum := md5.Sum([]byte(origParent + RootParentHashSuffix))

	return evidence.VirtualRootParentPrefix + hex.EncodeToString(sum[:])[:8]
}

// VirtualLogEventID returns the synthesized eventId for a staged
// virtual parent log at parentID, per spec.md §4.2: "VIRTUAL_LOG_" +
// parentId.
func VirtualLogEventID(parentID string) string {
	return evidence.VirtualLogPrefix + parentID
}
