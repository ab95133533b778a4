package reconcile

import "sync"

// idLocks сериализует операции по id записи: не более одного resolution
// в полете на каждый id. Мьютексы создаются лениво и живут до конца
// процесса — множество конфликтующих id у одного клиента невелико.
type idLocks struct {
	locks map[int64]*sync.Mutex
	mu    sync.Mutex
}

func newIDLocks() *idLocks {
	return &idLocks{locks: make(map[int64]*sync.Mutex)}
}

// forID возвращает мьютекс для конкретного id; всегда один и тот же
func (l *idLocks) forID(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}
