package storage

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"sort"
	"strings"
)

// NoRecentVisit is reported as the most recent URL of an empty ledger.
const NoRecentVisit = "none"

// topSitesLimit is how many entries Summary ranks.
const topSitesLimit = 3

// VisitRecord represents a single visited page. Timestamp is opaque display
// text and is never parsed.
type VisitRecord struct {
	URL       string
	Timestamp string
}

// SiteCount pairs a URL with its visit count.
type SiteCount struct {
	URL    string
	Visits int
}

// Summary is a snapshot of ledger analytics.
type Summary struct {
	Total      int
	MostRecent string
	Top        []SiteCount
}

// ImportResult reports how many lines an import appended and skipped.
type ImportResult struct {
	Imported int
	Skipped  int
}

// HistoryLedger is the ordered visit log plus per-URL visit counters.
//
// counts[u] always equals the number of log records with URL u; a URL with no
// records has no counts entry at all.
type HistoryLedger struct {
	log    []VisitRecord
	counts map[string]int
}

// NewHistoryLedger creates an empty ledger.
func NewHistoryLedger() *HistoryLedger {
	return &HistoryLedger{
		counts: make(map[string]int),
	}
}

// Record appends a visit and bumps its counter.
func (l *HistoryLedger) Record(url, timestamp string) {
	l.log = append(l.log, VisitRecord{URL: url, Timestamp: timestamp})
	l.counts[url]++
}

// Entries returns a copy of the log in insertion order.
func (l *HistoryLedger) Entries() []VisitRecord {
	result := make([]VisitRecord, len(l.log))
	copy(result, l.log)
	return result
}

// Len returns the number of records in the log.
func (l *HistoryLedger) Len() int {
	return len(l.log)
}

// Last returns the most recently appended record.
func (l *HistoryLedger) Last() (VisitRecord, bool) {
	if len(l.log) == 0 {
		return VisitRecord{}, false
	}
	return l.log[len(l.log)-1], true
}

// VisitCount returns the counter for url and whether one exists.
func (l *HistoryLedger) VisitCount(url string) (int, bool) {
	n, ok := l.counts[url]
	return n, ok
}

// Search yields, in log order, every record whose URL contains keyword.
// Matching is case-sensitive.
func (l *HistoryLedger) Search(keyword string) iter.Seq[VisitRecord] {
	return func(yield func(VisitRecord) bool) {
		for _, rec := range l.log {
			if !strings.Contains(rec.URL, keyword) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// DeleteURL removes every record whose URL equals url exactly and drops its
// counter. Returns the number of records removed; deleting an unknown URL is
// a no-op.
func (l *HistoryLedger) DeleteURL(url string) int {
	kept := l.log[:0]
	for _, rec := range l.log {
		if rec.URL != url {
			kept = append(kept, rec)
		}
	}
	removed := len(l.log) - len(kept)
	clear(l.log[len(kept):])
	l.log = kept
	delete(l.counts, url)
	return removed
}

// Summary returns the record count, the most recent URL and the top sites.
func (l *HistoryLedger) Summary() Summary {
	s := Summary{
		Total:      len(l.log),
		MostRecent: NoRecentVisit,
		Top:        l.TopSites(topSitesLimit),
	}
	if last, ok := l.Last(); ok {
		s.MostRecent = last.URL
	}
	return s
}

// TopSites ranks URLs by visit count, highest first. Equal counts are ordered
// by URL descending.
func (l *HistoryLedger) TopSites(n int) []SiteCount {
	sites := make([]SiteCount, 0, len(l.counts))
	for url, visits := range l.counts {
		sites = append(sites, SiteCount{URL: url, Visits: visits})
	}
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Visits != sites[j].Visits {
			return sites[i].Visits > sites[j].Visits
		}
		return sites[i].URL > sites[j].URL
	})
	if n >= 0 && len(sites) > n {
		sites = sites[:n]
	}
	return sites
}

// Export writes each record as "url,timestamp" on its own line, in log order.
// Commas are not escaped.
func (l *HistoryLedger) Export(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	for _, rec := range l.log {
		if _, err := fmt.Fprintf(bw, "%s,%s\n", rec.URL, rec.Timestamp); err != nil {
			return 0, fmt.Errorf("writing record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flushing export: %w", err)
	}
	return len(l.log), nil
}

// Import reads "url,timestamp" lines, splitting on the first comma, and
// appends each as a new record. Lines without a comma are skipped and
// counted. Only the newline is stripped, so a trailing carriage return stays
// part of the timestamp, and lines may be any length. Nothing is appended if
// reading fails.
func (l *HistoryLedger) Import(r io.Reader) (ImportResult, error) {
	var (
		records []VisitRecord
		res     ImportResult
	)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return ImportResult{}, fmt.Errorf("reading history: %w", err)
		}
		if line == "" && err == io.EOF {
			break
		}
		line = strings.TrimSuffix(line, "\n")

		url, timestamp, ok := strings.Cut(line, ",")
		if !ok {
			res.Skipped++
		} else {
			records = append(records, VisitRecord{URL: url, Timestamp: timestamp})
		}
		if err == io.EOF {
			break
		}
	}

	for _, rec := range records {
		l.Record(rec.URL, rec.Timestamp)
	}
	res.Imported = len(records)
	return res, nil
}
