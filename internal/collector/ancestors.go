package collector

// completeAncestors runs the two post-traversal passes over the raw
// ignored sets.
//
// Pass 1 walks every collected path's proper ancestors and adds each one
// the directory predicate reports as ignored. An empty ignored directory
// several levels deep still appears in the output skeleton even when
// nothing beneath it was collected directly.
//
// Pass 2 walks the same ancestors and pulls in their on-disk sidecar
// metadata files, unless a negation rule resurrects the sidecar. If a
// folder's contents were collected, its metadata travels too.
//
// Both passes are idempotent: ancestors of added ancestors and of added
// sidecars are subsets of chains already walked.
func (c *Collector) completeAncestors(res *Result) {
	collected := append(res.Files(), res.Dirs()...)

	for _, p := range collected {
		for dir := parentDir(p); dir != ""; dir = parentDir(dir) {
			if c.matcher.IsDirIgnored(dir) {
				res.AddDir(dir)
			}
		}
	}

	for _, p := range collected {
		for dir := parentDir(p); dir != ""; dir = parentDir(dir) {
			c.addDirSidecar(res, dir)
		}
	}
}
