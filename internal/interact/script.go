package interact

import "refa/internal/casestyle"

// Script is a Prompter that replays canned responses, for tests. A nil Style
// choice or an exhausted answer queue behaves as a cancellation.
type Script struct {
	Style      casestyle.Style
	StyleOK    bool
	Mode       Mode
	ModeOK     bool
	ConfirmAns []bool
	ReviewAns  []ReviewAnswer
	Messages   []string
	confirmIdx int
	reviewIdx  int
}

func (s *Script) ChooseStyle() (casestyle.Style, bool) {
	return s.Style, s.StyleOK
}

func (s *Script) ChooseMode() (Mode, bool) {
	return s.Mode, s.ModeOK
}

func (s *Script) Confirm(prompt string) (bool, bool) {
	if s.confirmIdx >= len(s.ConfirmAns) {
		return false, false
	}
	ans := s.ConfirmAns[s.confirmIdx]
	s.confirmIdx++
	return ans, true
}

func (s *Script) ReviewCandidate(original, suggestion, preview string) (ReviewAnswer, bool) {
	if s.reviewIdx >= len(s.ReviewAns) {
		return ReviewAnswer{}, false
	}
	ans := s.ReviewAns[s.reviewIdx]
	s.reviewIdx++
	return ans, true
}

func (s *Script) Notify(message string) {
	s.Messages = append(s.Messages, message)
}
