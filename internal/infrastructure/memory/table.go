// Package memory implementa los repositorios sobre estructuras en memoria del proceso.
// Es el driver por defecto: los datos se cargan desde el dataset de demostración y se
// pierden al reiniciar.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/PetShop-api/internal/domain"
)

// table colección indexada por id con secuencia propia. Guarda copias para que los
// llamadores no compartan punteros con el almacenamiento.
type table[T any] struct {
	mu    sync.RWMutex
	seq   int64
	rows  map[int64]T
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[int64]T), clone: clone}
}

// insert asigna id (si assign lo pide) y guarda una copia.
func (t *table[T]) insert(v T, setID func(*T, int64), getID func(T) int64) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := getID(v)
	if id == 0 {
		t.seq++
		id = t.seq
		setID(&v, id)
	} else if id > t.seq {
		t.seq = id
	}
	t.rows[id] = t.clone(v)
	return v
}

// insertUnique como insert, pero rechaza con ErrDuplicate si alguna fila cumple conflict.
// El chequeo y la escritura ocurren bajo el mismo lock.
func (t *table[T]) insertUnique(v T, setID func(*T, int64), getID func(T) int64, conflict func(T) bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conflicts(getID(v), getID, conflict) {
		var zero T
		return zero, domain.ErrDuplicate
	}
	id := getID(v)
	if id == 0 {
		t.seq++
		id = t.seq
		setID(&v, id)
	} else if id > t.seq {
		t.seq = id
	}
	t.rows[id] = t.clone(v)
	return v, nil
}

// updateUnique como update, con el chequeo de unicidad bajo el mismo lock.
func (t *table[T]) updateUnique(id int64, getID func(T) int64, conflict func(T) bool, fn func(*T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if t.conflicts(id, getID, conflict) {
		return domain.ErrDuplicate
	}
	if err := fn(&v); err != nil {
		return err
	}
	t.rows[id] = v
	return nil
}

// conflicts requiere el lock tomado. La fila selfID no cuenta.
func (t *table[T]) conflicts(selfID int64, getID func(T) int64, conflict func(T) bool) bool {
	for id, v := range t.rows {
		if (selfID == 0 || id != selfID) && conflict(v) {
			return true
		}
	}
	return false
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(v), true
}

func (t *table[T]) replace(id int64, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = t.clone(v)
	return nil
}

// update aplica fn sobre la fila bajo el lock de escritura.
func (t *table[T]) update(id int64, fn func(*T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if err := fn(&v); err != nil {
		return err
	}
	t.rows[id] = v
	return nil
}

func (t *table[T]) remove(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// find devuelve las filas que cumplen keep ordenadas por less.
func (t *table[T]) find(keep func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if keep == nil || keep(v) {
			out = append(out, t.clone(v))
		}
	}
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// removeWhere borra las filas que cumplen keep y devuelve sus ids.
func (t *table[T]) removeWhere(keep func(T) bool) []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var ids []int64
	for id, v := range t.rows {
		if keep(v) {
			delete(t.rows, id)
			ids = append(ids, id)
		}
	}
	return ids
}

// updateWhere aplica fn a las filas que cumplen keep y devuelve cuántas cambió.
func (t *table[T]) updateWhere(keep func(T) bool, fn func(*T)) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for id, v := range t.rows {
		if keep(v) {
			fn(&v)
			t.rows[id] = v
			n++
		}
	}
	return n
}

// countWhere cuenta las filas que cumplen keep.
func (t *table[T]) countWhere(keep func(T) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, v := range t.rows {
		if keep(v) {
			n++
		}
	}
	return n
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// page recorta rows según limit/offset y devuelve el total antes de recortar.
func page[T any](rows []T, limit, offset int) ([]T, int) {
	total := len(rows)
	if offset >= total {
		return []T{}, total
	}
	if offset < 0 {
		offset = 0
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return rows[offset:end], total
}
