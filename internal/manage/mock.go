package manage

import "context"

// MockDriver is a test double for Driver with per-method overrides.
// Methods without an override succeed and report an empty backend.
type MockDriver struct {
	NodeNamesFunc func(ctx context.Context) ([]string, error)
	IsRunningFunc func(ctx context.Context, name string) (bool, error)
	StartNodeFunc func(ctx context.Context, spec StartSpec) error
	StopNodeFunc  func(ctx context.Context, name string) error
	SettleFunc    func(ctx context.Context) error

	// Recorded calls, in issue order.
	Started []StartSpec
	Stopped []string
	Settled int
}

var _ Driver = (*MockDriver)(nil)

func (m *MockDriver) NodeNames(ctx context.Context) ([]string, error) {
	if m.NodeNamesFunc != nil {
		return m.NodeNamesFunc(ctx)
	}
	return nil, nil
}

func (m *MockDriver) IsRunning(ctx context.Context, name string) (bool, error) {
	if m.IsRunningFunc != nil {
		return m.IsRunningFunc(ctx, name)
	}
	return false, nil
}

func (m *MockDriver) StartNode(ctx context.Context, spec StartSpec) error {
	m.Started = append(m.Started, spec)
	if m.StartNodeFunc != nil {
		return m.StartNodeFunc(ctx, spec)
	}
	return nil
}

func (m *MockDriver) StopNode(ctx context.Context, name string) error {
	m.Stopped = append(m.Stopped, name)
	if m.StopNodeFunc != nil {
		return m.StopNodeFunc(ctx, name)
	}
	return nil
}

func (m *MockDriver) Settle(ctx context.Context) error {
	m.Settled++
	if m.SettleFunc != nil {
		return m.SettleFunc(ctx)
	}
	return nil
}
