// Package git reads documentation straight out of local repository clones
// with go-git. It never clones or fetches: repositories are expected under
// {repos_dir}/{owner}/{repo}, kept current by an external process.
//
// TreeSource resolves each registered source's branch, walks the docs path
// of the commit tree and yields the markdown files as docs.SourceFile
// values. Revision digests the resolved commits so callers can skip
// rebuilding the corpus when nothing moved.
package git
