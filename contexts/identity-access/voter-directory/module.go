package voterdirectory

import (
	"log/slog"

	httpadapter "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/adapters/http"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/adapters/hashing"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/adapters/memory"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/application/commands"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/application/queries"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/entities"
	"github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/ports"

	"golang.org/x/crypto/bcrypt"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Voters ports.VoterRepository
	Hasher ports.CredentialHasher
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Register: commands.RegisterVoterUseCase{
				Voters: deps.Voters,
				Hasher: deps.Hasher,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Voters: queries.FindVoterUseCase{
				Voters: deps.Voters,
				Hasher: deps.Hasher,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule hashes with bcrypt.MinCost; callers wanting production
// cost build the module through NewModule.
func NewInMemoryModule(seed []entities.Voter, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Voters: store,
		Hasher: hashing.BcryptHasher{Cost: bcrypt.MinCost},
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
