package widget

// startCountdown вызывается под mu.
func (s *Session) startCountdown() {
	s.state = StateCountdownActive
	s.countdown = s.options.CountdownSeed
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.runCountdown(s.options.NewTicker(s.options.TickInterval), s.stop, s.done)
}

// detachCountdown вызывается под mu.
func (s *Session) detachCountdown() (chan struct{}, chan struct{}) {
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil

	return stop, done
}

func (s *Session) runCountdown(ticker Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if s.tick() {
				s.navigate(RedirectReasonCountdown)

				return
			}
		}
	}
}

// tick уменьшает счётчик и сообщает, что пора переходить. Состояние
// переключается под mu, поэтому переход делается ровно один раз.
func (s *Session) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCountdownActive {
		return false
	}

	s.countdown--

	if s.countdown > 0 {
		return false
	}

	s.countdown = 0
	s.state = StateRedirected

	return true
}
