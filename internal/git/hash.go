package git

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Revision digests the commit every registered source currently resolves
// to. Missing clones or branches contribute a fixed marker, so the digest
// changes when they appear.
func (s TreeSource) Revision() (string, error) {
	var entries []string
	for _, entry := range s.Registry.Entries() {
		cfg := entry.Config
		id := fmt.Sprintf("%s/%s@%s:%s", cfg.Owner, cfg.Repo, cfg.Branch, cfg.DocsPath)

		commit, err := resolveBranch(s.repoPath(cfg), cfg.Branch)
		switch {
		case err == nil:
			entries = append(entries, id+"="+commit.Hash.String())
		case isMissing(err) && !s.Strict:
			entries = append(entries, id+"=missing")
		default:
			return "", err
		}
	}

	sort.Strings(entries)
	h := sha256.New()
	for _, e := range entries {
		h.Write([]byte(e))
		h.Write([]byte("\n"))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
