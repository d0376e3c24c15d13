package sqlitecache

import (
	"sort"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// Collection names double as document keys in the collections table.
const (
	CollectionShips     = "ships"
	CollectionCrew      = "crew"
	CollectionLoans     = "loans"
	CollectionStandBack = "standback"
)

// Collection gives typed access to one cached collection document. The
// document holds a mapping from record identity to the cached record shape.
type Collection[T any, D any] struct {
	store  *Store
	name   string
	encode func(T) (D, error)
	decode func(D) (T, error)
}

// ReadAll returns every cached record, ordered by identity for
// deterministic output.
func (c *Collection[T, D]) ReadAll() ([]T, error) {
	docs := map[string]D{}
	if _, err := c.store.readDoc(c.name, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, 0, len(docs))
	for _, id := range ids {
		item, err := c.decode(docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Get returns the cached record with the given identity, if present.
func (c *Collection[T, D]) Get(id string) (T, bool, error) {
	var zero T
	docs := map[string]D{}
	if _, err := c.store.readDoc(c.name, &docs); err != nil {
		return zero, false, err
	}
	doc, ok := docs[id]
	if !ok {
		return zero, false, nil
	}
	item, err := c.decode(doc)
	if err != nil {
		return zero, false, err
	}
	return item, true, nil
}

// Put upserts one record into the collection document.
func (c *Collection[T, D]) Put(id string, item T) error {
	doc, err := c.encode(item)
	if err != nil {
		return err
	}
	docs := map[string]D{}
	if _, err := c.store.readDoc(c.name, &docs); err != nil {
		return err
	}
	docs[id] = doc
	return c.store.writeDoc(c.name, docs)
}

// Remove deletes one record from the collection document. Removing an
// absent identity is a no-op.
func (c *Collection[T, D]) Remove(id string) error {
	docs := map[string]D{}
	found, err := c.store.readDoc(c.name, &docs)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	delete(docs, id)
	return c.store.writeDoc(c.name, docs)
}

// NewCrewCollection returns the typed cache view over cached crew members.
func NewCrewCollection(store *Store) *Collection[domain.Person, personDoc] {
	return &Collection[domain.Person, personDoc]{
		store:  store,
		name:   CollectionCrew,
		encode: encodePerson,
		decode: decodePerson,
	}
}

// NewShipCollection returns the typed cache view over cached ships.
func NewShipCollection(store *Store) *Collection[domain.Ship, shipDoc] {
	return &Collection[domain.Ship, shipDoc]{
		store:  store,
		name:   CollectionShips,
		encode: encodeShip,
		decode: decodeShip,
	}
}

// NewLoanCollection returns the typed cache view over cached loans.
func NewLoanCollection(store *Store) *Collection[domain.Loan, loanDoc] {
	return &Collection[domain.Loan, loanDoc]{
		store:  store,
		name:   CollectionLoans,
		encode: encodeLoan,
		decode: decodeLoan,
	}
}

// NewStandBackCollection returns the typed cache view over cached
// stand-back records.
func NewStandBackCollection(store *Store) *Collection[domain.StandBackRecord, standBackDoc] {
	return &Collection[domain.StandBackRecord, standBackDoc]{
		store:  store,
		name:   CollectionStandBack,
		encode: encodeStandBack,
		decode: decodeStandBack,
	}
}
