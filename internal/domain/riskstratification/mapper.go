package riskstratification

// StationToProtocol maps a protocol summary.
func StationToProtocol(in *StationProtocol) *Protocol {
	if in == nil {
		return nil
	}
	return &Protocol{
		ID:       in.ID,
		Name:     in.Name,
		General:  in.General,
		HighRisk: in.HighRisk,
	}
}

// StationToProtocols maps the catalog list; absent upstream lists map
// to an empty list.
func StationToProtocols(in []StationProtocol) []Protocol {
	out := make([]Protocol, 0, len(in))
	for i := range in {
		out = append(out, *StationToProtocol(&in[i]))
	}
	return out
}

// StationToProtocolWithQuestions maps a full protocol. The question
// list keeps upstream order and defaults to empty when absent.
func StationToProtocolWithQuestions(in *StationProtocolWithQuestions) *ProtocolWithQuestions {
	if in == nil {
		return nil
	}
	questions := make([]ProtocolQuestion, 0, len(in.Questions))
	for _, q := range in.Questions {
		questions = append(questions, ProtocolQuestion{
			ID:      q.ID,
			Name:    q.Name,
			Order:   q.Order,
			Weight:  q.Weight,
			AllowNA: q.AllowNA,
		})
	}
	return &ProtocolWithQuestions{
		Protocol:  *StationToProtocol(&in.StationProtocol),
		Questions: questions,
	}
}

// StationToSecondaryScreenings maps the screenings list, empty when
// upstream sent none.
func StationToSecondaryScreenings(in []StationSecondaryScreening) []SecondaryScreening {
	out := make([]SecondaryScreening, 0, len(in))
	for _, s := range in {
		out = append(out, SecondaryScreening{
			ID:             s.ID,
			ProviderID:     s.ProviderID,
			ApprovalStatus: s.ApprovalStatus,
			Note:           s.Note,
		})
	}
	return out
}
