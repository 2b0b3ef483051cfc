package toolkit

import (
	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/dates"
	"github.com/temirov/utilkit/internal/httpapi"
	"github.com/temirov/utilkit/internal/structdata"
	"github.com/temirov/utilkit/internal/tabular"
)

// Dependencies carries the collaborators a Toolkit is built from. Zero
// fields fall back to production defaults.
type Dependencies struct {
	Logger    *zap.Logger
	Transport httpapi.Transport
	Clock     dates.Clock
}

// Toolkit bundles the stateless helper services over one shared logger.
type Toolkit struct {
	StructuredStore *structdata.Store
	TabularStore    *tabular.Store
	HTTPClient      *httpapi.Client
	Dates           *dates.Service
}

// New wires every helper service with the provided dependencies.
func New(dependencies Dependencies) *Toolkit {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Toolkit{
		StructuredStore: structdata.NewStore(logger),
		TabularStore:    tabular.NewStore(logger),
		HTTPClient:      httpapi.NewClient(logger, dependencies.Transport),
		Dates:           dates.NewService(logger, dependencies.Clock),
	}
}
