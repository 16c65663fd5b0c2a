package services

import (
	"context"

	"go.uber.org/zap"

	"portfolio/internal/models"
)

// ProjectSeeder is the slice of the repository the seed command needs.
type ProjectSeeder interface {
	SeedDefaults(ctx context.Context, projects []models.Project) (int, error)
}

type SeedService struct {
	repo   ProjectSeeder
	logger *zap.Logger
}

func NewSeedService(repo ProjectSeeder, logger *zap.Logger) *SeedService {
	return &SeedService{repo: repo, logger: logger}
}

// Run inserts the sample projects when the table is empty and is a no-op
// otherwise, so running it repeatedly never duplicates rows.
func (s *SeedService) Run(ctx context.Context) error {
	inserted, err := s.repo.SeedDefaults(ctx, SampleProjects())
	if err != nil {
		return err
	}

	if inserted == 0 {
		s.logger.Info("Projects already present, seed skipped")
	} else {
		s.logger.Info("Sample projects added", zap.Int("count", inserted))
	}
	return nil
}

// SampleProjects returns the fixed demo content the seed command inserts.
func SampleProjects() []models.Project {
	link := func(s string) *string { return &s }
	return []models.Project{
		{
			Title:       "Calculator App",
			Description: "A fully functional calculator application built with Python and Tkinter. Features basic arithmetic operations with a clean, user-friendly interface.",
			Link:        link("https://github.com/yourusername/calculator"),
		},
		{
			Title:       "Digital Clock",
			Description: "An elegant digital clock application with customizable themes and time formats. Built using Python with a modern GUI interface.",
			Link:        link("https://github.com/yourusername/clock"),
		},
		{
			Title:       "College Payment Website",
			Description: "A comprehensive web application for managing college fee payments. Features student authentication, payment tracking, and admin dashboard.",
			Link:        link("https://github.com/yourusername/college-payment"),
		},
		{
			Title:       "Personal Diary App",
			Description: "A secure personal diary application with password protection, entry management, and search functionality. Built with Flask and SQLite.",
			Link:        link("https://github.com/yourusername/diary-app"),
		},
		{
			Title:       "Tic Tac Toe Game",
			Description: "Interactive Tic Tac Toe game with both single-player (vs AI) and multiplayer modes. Features a clean GUI and smart AI opponent.",
			Link:        link("https://github.com/yourusername/tic-tac-toe"),
		},
		{
			Title:       "Multi-Game Platform",
			Description: "A gaming platform featuring multiple classic games including Hand Cricket and Tic Tac Toe. Built with Python and modern game mechanics.",
			Link:        link("https://github.com/yourusername/multi-games"),
		},
	}
}
