package research

// Fixtures returns the built-in sample dataset used when no data file is
// configured. Each call returns fresh slices.
func Fixtures() Dataset {
	return Dataset{
		Blocks: []ContentBlock{
			{
				ID:            "block-1",
				Title:         "Book a room at the Four Seasons hotel in London",
				Kind:          "prototype-test",
				Summary:       "Mission success rate and paths taken",
				ResponseCount: 24,
			},
			{
				ID:            "block-2",
				Title:         "How would you rate the ease of use?",
				Kind:          "opinion-scale",
				Summary:       "5-point rating scale",
				ResponseCount: 24,
			},
			{
				ID:            "block-3",
				Title:         "What did you expect to happen after confirming?",
				Kind:          "open-question",
				Summary:       "Free text answers",
				ResponseCount: 21,
			},
			{
				ID:            "block-4",
				Title:         "Find the cancellation policy",
				Kind:          "prototype-test",
				Summary:       "Mission success rate and paths taken",
				ResponseCount: 19,
			},
		},
		Participants: []Participant{
			{
				ID:                "participant-1",
				ParticipantID:     "23338",
				Status:            StatusCompleted,
				VideoThumbnailURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400&h=300&fit=crop",
				VideoDuration:     "02:25",
				Responses: Responses{
					Mission{
						Icon:        "prototype-test",
						IconColor:   "primary",
						Title:       "Book a room at the Four Seasons hotel in London",
						Status:      "Direct success",
						StatusColor: StatusColorGreen,
						Duration:    "42.1s",
						Screenshots: []string{
							"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=80&h=60&fit=crop",
							"https://images.unsplash.com/photo-1582719508461-905c673771fd?w=80&h=60&fit=crop",
							"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=80&h=60&fit=crop",
							"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=80&h=60&fit=crop",
						},
						Highlighted: true,
					},
					Transcript{
						Timestamp: "0:00",
						Text:      "Okay, let's see... looking for Four Seasons in London. Hmm, I'll type it in the search bar... yeah, there it is.",
					},
					Transcript{
						Timestamp:     "0:30",
						Text:          "Just checking the dates... alright, selecting next weekend.",
						HighlightTerm: "dates",
					},
					Transcript{
						Timestamp: "1:05",
						Text:      "The room options are a bit confusing, I'm not sure which one includes breakfast.",
					},
					Transcript{
						Timestamp:     "1:28",
						Text:          "I'll confirm the booking anyway, it looks like all the details are correct. Done. That was pretty straightforward overall.",
						HighlightTerm: "straightforward",
					},
					Mission{
						Icon:        "prototype-test",
						IconColor:   "primary",
						Title:       "Find the cancellation policy",
						Status:      "Gave up",
						StatusColor: StatusColorNeutral,
						Duration:    "1m 12s",
					},
					Rating{
						Icon:        "star",
						IconColor:   "yellow",
						Question:    "How would you rate the ease of use?",
						Rating:      4,
						MaxRating:   5,
						Highlighted: true,
					},
				},
			},
			{
				ID:                "participant-2",
				ParticipantID:     "23341",
				Status:            StatusCompleted,
				VideoThumbnailURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400&h=300&fit=crop",
				VideoDuration:     "03:02",
				Responses: Responses{
					Mission{
						Icon:        "prototype-test",
						IconColor:   "primary",
						Title:       "Book a room at the Four Seasons hotel in London",
						Status:      "Indirect success",
						StatusColor: StatusColorNeutral,
						Duration:    "1m 38s",
						Screenshots: []string{
							"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=80&h=60&fit=crop",
							"https://images.unsplash.com/photo-1590490360182-c33d57733427?w=80&h=60&fit=crop",
						},
					},
					Transcript{
						Timestamp:     "0:12",
						Text:          "Where is the search? Oh, it's hidden behind the menu icon.",
						HighlightTerm: "hidden",
					},
					Transcript{
						Timestamp: "0:58",
						Text:      "I went back because the price changed after I picked the dates.",
					},
					Rating{
						Icon:      "star",
						IconColor: "yellow",
						Question:  "How would you rate the ease of use?",
						Rating:    2,
						MaxRating: 5,
					},
				},
			},
			{
				ID:                "participant-3",
				ParticipantID:     "23356",
				Status:            StatusInProgress,
				VideoThumbnailURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=300&fit=crop",
				VideoDuration:     "00:48",
				Responses: Responses{
					Transcript{
						Timestamp: "0:04",
						Text:      "Starting now. The home page loads quickly.",
					},
				},
			},
		},
	}
}
