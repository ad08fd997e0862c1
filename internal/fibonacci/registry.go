package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and caches Calculator instances by name.
type CalculatorFactory interface {
	// Create returns a fresh, uncached Calculator.
	Create(name string) (Calculator, error)
	// Get returns the cached Calculator for name, creating it on first use.
	Get(name string) (Calculator, error)
	// List returns the registered names in sorted order.
	List() []string
	// Register adds or replaces a calculator type.
	Register(name string, creator func() coreCalculator) error
	// GetAll returns every registered calculator.
	GetAll() map[string]Calculator
}

// DefaultFactory is the thread-safe CalculatorFactory used by the CLI.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with the built-in calculators:
//
//   - "vector": VectorPower
//   - "matrix": MatrixPower
//   - "fibmatrix": FibonacciMatrixPower
//   - "linear": LinearIteration
//
// Calculators registered with RegisterCalculator before the call (such as
// "gmp" under the gmp build tag) are included too.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}
	_ = f.Register("vector", func() coreCalculator { return &VectorPower{} })
	_ = f.Register("matrix", func() coreCalculator { return &MatrixPower{} })
	_ = f.Register("fibmatrix", func() coreCalculator { return &FibonacciMatrixPower{} })
	_ = f.Register("linear", func() coreCalculator { return &LinearIteration{} })

	extraMu.RLock()
	for name, creator := range extraCreators {
		_ = f.Register(name, creator)
	}
	extraMu.RUnlock()
	return f
}

// Register adds a calculator type. An existing registration with the same
// name is replaced and its cached instance dropped.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) error {
	if name == "" || creator == nil {
		return fmt.Errorf("fibonacci: invalid registration for %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	delete(f.calculators, name)
	return nil
}

// Create implements CalculatorFactory.
func (f *DefaultFactory) Create(name string) (Calculator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	return NewCalculator(creator()), nil
}

// Get implements CalculatorFactory.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	calc, ok := f.calculators[name]
	f.mu.RUnlock()
	if ok {
		return calc, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if calc, ok := f.calculators[name]; ok {
		return calc, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	calc = NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List implements CalculatorFactory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll implements CalculatorFactory.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()
	for name, creator := range f.creators {
		if _, ok := f.calculators[name]; !ok {
			f.calculators[name] = NewCalculator(creator())
		}
	}
	out := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		out[name] = calc
	}
	return out
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.creators[name]
	return ok
}

var (
	extraMu       sync.RWMutex
	extraCreators = map[string]func() coreCalculator{}
)

// RegisterCalculator makes a calculator available to every factory created
// afterwards. Build-tag specific calculators call it from init.
func RegisterCalculator(name string, creator func() coreCalculator) {
	extraMu.Lock()
	extraCreators[name] = creator
	extraMu.Unlock()
}
