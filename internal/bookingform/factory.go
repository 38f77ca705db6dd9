package bookingform

// Factory создает независимые формы с общей конфигурацией и зависимостями
type Factory struct {
	cfg     Config
	rules   AvailabilityRules
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewFactory(cfg Config, rules AvailabilityRules, useCase SubmitBookingUseCase, logger Logger) *Factory {
	return &Factory{cfg: cfg, rules: rules, useCase: useCase, logger: logger}
}

// NewForm возвращает новую форму в фазе Selecting
func (f *Factory) NewForm() *Form {
	return New(f.cfg, f.rules, f.useCase, f.logger)
}
