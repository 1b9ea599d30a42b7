package association

// TableSize is the fixed number of buckets. The table never grows; clues that
// hash to the same bucket are chained.
const TableSize = 13

// Association links a clue to the suspect it points to.
type Association struct {
	Clue    string `json:"clue"`
	Suspect string `json:"suspect"`
}

type entry struct {
	Association
	next *entry
}

// Bucket is a snapshot of one non-empty slot, entries most-recent-first.
type Bucket struct {
	Index   int           `json:"index"`
	Entries []Association `json:"entries"`
}

// Table maps clues to suspects using separate chaining.
type Table struct {
	buckets [TableSize]*entry
	count   int
}

func NewTable() *Table {
	return &Table{}
}

// Hash computes h = h*31 + b over the bytes of key with 32-bit wraparound,
// reduced modulo TableSize.
func Hash(key string) int {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = h*31 + uint32(key[i])
	}
	return int(h % TableSize)
}

// Insert prepends a new association to the clue's bucket. Repeated inserts of
// the same pair are kept as separate entries.
func (t *Table) Insert(clue, suspect string) {
	h := Hash(clue)
	t.buckets[h] = &entry{
		Association: Association{Clue: clue, Suspect: suspect},
		next:        t.buckets[h],
	}
	t.count++
}

// Lookup returns every association recorded for clue, most recent first.
func (t *Table) Lookup(clue string) []Association {
	var found []Association
	for e := t.buckets[Hash(clue)]; e != nil; e = e.next {
		if e.Clue == clue {
			found = append(found, e.Association)
		}
	}
	return found
}

// ForEachBucket calls visit for each non-empty bucket in index order.
func (t *Table) ForEachBucket(visit func(index int, entries []Association)) {
	for i, head := range t.buckets {
		if head == nil {
			continue
		}
		var entries []Association
		for e := head; e != nil; e = e.next {
			entries = append(entries, e.Association)
		}
		visit(i, entries)
	}
}

func (t *Table) Buckets() []Bucket {
	var buckets []Bucket
	t.ForEachBucket(func(index int, entries []Association) {
		buckets = append(buckets, Bucket{Index: index, Entries: entries})
	})
	return buckets
}

func (t *Table) Len() int {
	return t.count
}
