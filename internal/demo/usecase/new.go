package usecase

import (
	"math/rand"
	"sync"
	"time"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/demo"
	"broadcast-srv/internal/post"
	"broadcast-srv/internal/user"
	pkgLog "broadcast-srv/pkg/log"
	"broadcast-srv/pkg/scope"
)

type usecase struct {
	l        pkgLog.Logger
	userUC   user.UseCase
	postUC   post.UseCase
	sink     broadcast.Sink
	scopeMgr scope.Manager

	clock func() time.Time

	// rng backs the canned-content picks. Guarded by randMu; math/rand
	// sources are not safe for concurrent use.
	rng    *rand.Rand
	randMu sync.Mutex
}

func New(l pkgLog.Logger, userUC user.UseCase, postUC post.UseCase, sink broadcast.Sink, scopeMgr scope.Manager) demo.UseCase {
	return &usecase{
		l:        l,
		userUC:   userUC,
		postUC:   postUC,
		sink:     sink,
		scopeMgr: scopeMgr,
		clock:    time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (uc *usecase) pick(pool []string) string {
	uc.randMu.Lock()
	defer uc.randMu.Unlock()
	return pool[uc.rng.Intn(len(pool))]
}
