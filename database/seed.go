package database

import (
	"fmt"
	"log"

	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/utils/auth"
	"gorm.io/gorm"
)

// Seeder inserts sample users and reports into an empty database so a
// fresh install has something to look at.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedReports(); err != nil {
		return fmt.Errorf("failed to seed reports: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// SeedUsers creates one account per role if no users exist yet
func (s *Seeder) SeedUsers() error {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword("123456")
	if err != nil {
		return err
	}

	users := []model.User{
		{Email: "admin@luct.ac.rw", PasswordHash: hashed, Name: "System Administrator", Role: model.RoleProgramLeader, Faculty: "Computing and IT"},
		{Email: "lecturer@luct.ac.rw", PasswordHash: hashed, Name: "Dr. John Smith", Role: model.RoleLecturer, Faculty: "Computing and IT"},
		{Email: "principal@luct.ac.rw", PasswordHash: hashed, Name: "Prof. Alice Johnson", Role: model.RolePrincipalLecturer, Faculty: "Computing and IT"},
		{Email: "student@luct.ac.rw", PasswordHash: hashed, Name: "Student User", Role: model.RoleStudent, Faculty: "Computing and IT"},
	}

	return s.db.Create(&users).Error
}

// SeedReports inserts sample reports if none exist
func (s *Seeder) SeedReports() error {
	var count int64
	if err := s.db.Model(&model.Report{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var admin model.User
	if err := s.db.Where("email = ?", "admin@luct.ac.rw").First(&admin).Error; err != nil {
		return err
	}

	reports := []model.Report{
		{
			FacultyName:      "Computing and IT",
			ClassName:        "Year 1 CS A",
			WeekReporting:    "Week 1",
			DateLecture:      "2024-01-15",
			CourseName:       "Introduction to Programming",
			CourseCode:       "CS101",
			LecturerName:     "Dr. John Smith",
			StudentsPresent:  25,
			TotalStudents:    30,
			Venue:            "Room 101",
			LectureTime:      "08:00-10:00",
			TopicTaught:      "Programming Basics, Variables, Data Types, Control Structures",
			LearningOutcomes: "Students learned basic programming concepts and were able to write simple programs using variables and control structures",
			Recommendations:  "More practical exercises needed for better understanding",
			CreatedBy:        admin.ID,
		},
		{
			FacultyName:      "Computing and IT",
			ClassName:        "Year 2 IT B",
			WeekReporting:    "Week 2",
			DateLecture:      "2024-01-22",
			CourseName:       "Database Systems",
			CourseCode:       "CS201",
			LecturerName:     "Dr. John Smith",
			StudentsPresent:  28,
			TotalStudents:    32,
			Venue:            "Lab 205",
			LectureTime:      "10:00-12:00",
			TopicTaught:      "SQL Queries, SELECT statements, WHERE clauses, JOIN operations",
			LearningOutcomes: "Students mastered basic SQL operations and can create complex queries with multiple tables",
			Recommendations:  "Good participation, continue with advanced queries next week",
			CreatedBy:        admin.ID,
		},
		{
			FacultyName:      "Business",
			ClassName:        "Year 1 BBA A",
			WeekReporting:    "Week 1",
			DateLecture:      "2024-01-16",
			CourseName:       "Business Mathematics",
			CourseCode:       "BUS101",
			LecturerName:     "Dr. Sarah Wilson",
			StudentsPresent:  22,
			TotalStudents:    25,
			Venue:            "Room 301",
			LectureTime:      "14:00-16:00",
			TopicTaught:      "Algebra Review, Linear Equations, Business Calculations",
			LearningOutcomes: "Students refreshed algebra concepts and solved basic business math problems including profit calculations",
			Recommendations:  "Provide additional practice problems for homework",
			CreatedBy:        admin.ID,
		},
		{
			FacultyName:      "Computing and IT",
			ClassName:        "Year 3 SE A",
			WeekReporting:    "Week 3",
			DateLecture:      "2024-01-29",
			CourseName:       "Web Development",
			CourseCode:       "CS301",
			LecturerName:     "Prof. Alice Johnson",
			StudentsPresent:  18,
			TotalStudents:    20,
			Venue:            "Lab 310",
			LectureTime:      "13:00-15:00",
			TopicTaught:      "React.js Fundamentals, Components, State Management, Hooks",
			LearningOutcomes: "Students built their first React components and understood state management using useState hook",
			Recommendations:  "Excellent engagement, students should practice building more components",
			CreatedBy:        admin.ID,
		},
		{
			FacultyName:      "Engineering",
			ClassName:        "Year 2 Civil A",
			WeekReporting:    "Week 2",
			DateLecture:      "2024-01-23",
			CourseName:       "Structural Analysis",
			CourseCode:       "ENG202",
			LecturerName:     "Dr. Robert Brown",
			StudentsPresent:  35,
			TotalStudents:    40,
			Venue:            "Room 205",
			LectureTime:      "09:00-11:00",
			TopicTaught:      "Beam Analysis, Load Calculations, Stress Distribution",
			LearningOutcomes: "Students can calculate loads and analyze simple beam structures with various support conditions",
			Recommendations:  "Some students need extra help with complex calculations",
			CreatedBy:        admin.ID,
		},
	}

	return s.db.Create(&reports).Error
}
