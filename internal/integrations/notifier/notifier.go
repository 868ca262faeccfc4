// Package notifier доставляет события о бронированиях во внешнюю систему уведомлений.
package notifier

// New выбирает реализацию по конфигурации: брокер, если включен, иначе запись в лог
func New(cfg Config, m MetricsRecorder, log Logger) (Notifier, error) {
	if !cfg.Enabled {
		log.Warn("Notifier: broker disabled, events will only be logged")
		return NewDisabledNotifier(m, log), nil
	}

	n, err := NewAMQPNotifier(cfg, m, log)
	if err != nil {
		return nil, err
	}
	log.Info("Notifier: connected, exchange=%s", cfg.Exchange)
	return n, nil
}
