package repository

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"

	"github.com/camden-git/paranuarabackend/models"
)

// memorySnapshot is an immutable view of the population. It is never
// modified after construction, so it can be read without locks.
type memorySnapshot struct {
	people    map[int]models.Person
	companies map[int]models.Company
}

// MemoryDirectory is a Directory over data held entirely in memory.
// Replace swaps the whole population atomically; readers holding an older
// snapshot keep seeing it until they finish.
type MemoryDirectory struct {
	current atomic.Pointer[memorySnapshot]
	// reloadMu serializes reloads so an older read never lands after a newer one.
	reloadMu sync.Mutex
}

// NewMemoryDirectory builds a directory from the given records, rejecting duplicate indices.
func NewMemoryDirectory(people []models.Person, companies []models.Company) (*MemoryDirectory, error) {
	d := &MemoryDirectory{}
	if err := d.Replace(people, companies); err != nil {
		return nil, err
	}
	return d, nil
}

// Replace installs a new population. On error the previous one stays in place.
func (d *MemoryDirectory) Replace(people []models.Person, companies []models.Company) error {
	snap, err := buildSnapshot(people, companies)
	if err != nil {
		return err
	}
	d.current.Store(snap)
	return nil
}

// LoadFrom copies the full population out of the database repositories.
// Concurrent calls run one at a time, in the order they acquire the lock.
func (d *MemoryDirectory) LoadFrom(people PersonRepositoryInterface, companies CompanyRepositoryInterface) error {
	d.reloadMu.Lock()
	defer d.reloadMu.Unlock()
	return d.load(people, companies)
}

// ReloadFromDB is LoadFrom over a single read transaction, so people and
// companies come from the same database state.
func (d *MemoryDirectory) ReloadFromDB(db *gorm.DB) error {
	d.reloadMu.Lock()
	defer d.reloadMu.Unlock()
	return db.Transaction(func(tx *gorm.DB) error {
		return d.load(NewPersonRepository(tx), NewCompanyRepository(tx))
	})
}

func (d *MemoryDirectory) load(people PersonRepositoryInterface, companies CompanyRepositoryInterface) error {
	allPeople, err := people.ListAll()
	if err != nil {
		return err
	}
	allCompanies, err := companies.ListAll()
	if err != nil {
		return err
	}
	return d.Replace(allPeople, allCompanies)
}

// Snapshot returns the population as it is right now.
func (d *MemoryDirectory) Snapshot() Directory {
	return d.view()
}

func (d *MemoryDirectory) view() *memorySnapshot {
	if snap := d.current.Load(); snap != nil {
		return snap
	}
	return emptySnapshot
}

func (d *MemoryDirectory) FindPersonByIndex(index int) (*models.Person, error) {
	return d.view().FindPersonByIndex(index)
}

func (d *MemoryDirectory) FindCompanyByIndex(index int) (*models.Company, error) {
	return d.view().FindCompanyByIndex(index)
}

func (d *MemoryDirectory) FindPeopleByIndices(indices []int) ([]models.Person, error) {
	return d.view().FindPeopleByIndices(indices)
}

func (d *MemoryDirectory) FindPeopleByCompany(companyIndex int) ([]models.Person, error) {
	return d.view().FindPeopleByCompany(companyIndex)
}

var emptySnapshot = &memorySnapshot{
	people:    map[int]models.Person{},
	companies: map[int]models.Company{},
}

func buildSnapshot(people []models.Person, companies []models.Company) (*memorySnapshot, error) {
	snap := &memorySnapshot{
		people:    make(map[int]models.Person, len(people)),
		companies: make(map[int]models.Company, len(companies)),
	}
	for _, c := range companies {
		if _, exists := snap.companies[c.Index]; exists {
			return nil, fmt.Errorf("%w: company index %d", ErrDuplicate, c.Index)
		}
		snap.companies[c.Index] = c
	}
	for _, p := range people {
		if _, exists := snap.people[p.Index]; exists {
			return nil, fmt.Errorf("%w: person index %d", ErrDuplicate, p.Index)
		}
		snap.people[p.Index] = p
	}
	return snap, nil
}

func (s *memorySnapshot) FindPersonByIndex(index int) (*models.Person, error) {
	p, ok := s.people[index]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *memorySnapshot) FindCompanyByIndex(index int) (*models.Company, error) {
	c, ok := s.companies[index]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *memorySnapshot) FindPeopleByIndices(indices []int) ([]models.Person, error) {
	seen := make(map[int]bool, len(indices))
	out := make([]models.Person, 0, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if p, ok := s.people[idx]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindPeopleByCompany scans the whole population; there is no reverse index to keep in sync.
func (s *memorySnapshot) FindPeopleByCompany(companyIndex int) ([]models.Person, error) {
	out := []models.Person{}
	for _, p := range s.people {
		if p.WorksFor(companyIndex) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}
