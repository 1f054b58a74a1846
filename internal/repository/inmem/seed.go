package inmem

import "github.com/nerkartran297/english-center-api/internal/model"

// demoCourses is the offline catalog, carried over from the demo data the
// legacy frontend shipped.
var demoCourses = []model.Course{
	{
		ID:          "1",
		Name:        "Complete Web Development Bootcamp 2024",
		Description: "Học lập trình web từ cơ bản đến nâng cao với HTML, CSS, JavaScript, React và Node.js",
		Teachers: []model.Teacher{
			{Name: "Nguyễn Văn Anh"},
			{Name: "Trần Minh Đức"},
		},
		Price:          1499000,
		CompareAtPrice: 1999000,
		Rating:         4.8,
		TotalVote:      245,
		Target: model.StringList{
			"Người mới bắt đầu học lập trình",
			"Sinh viên CNTT",
			"Người muốn chuyển nghề sang lập trình",
		},
		Summary: model.StringList{
			"Hiểu sâu về HTML, CSS và JavaScript",
			"Xây dựng website responsive",
			"Làm chủ React.js và Node.js",
			"Deploy ứng dụng thực tế",
		},
		StudentLimit:   100,
		AppliedNumber:  85,
		CurrentStudent: 72,
		CoverIMG:       "/logo.jpg",
		StartDate:      "15 01 2024",
		EndDate:        "15 04 2024",
		Classes: []model.Class{
			{
				ID:        "WD1-C1",
				CourseID:  "1",
				Name:      "HTML & CSS Fundamentals",
				Schedule:  model.StringList{"Mon 15:30 18:00", "Thu 19:30 23:00", "Sat 20:00 21:30"},
				Teachers:  []model.Teacher{{Name: "Nguyễn Văn Anh"}},
				Meeting:   "https://meet.example.com/wd1-c1",
				IsActive:  true,
				StartDate: "15 01 2024",
				EndDate:   "15 04 2024",
				Color:     "blue",
			},
		},
	},
	{
		ID:          "2",
		Name:        "Data Science và Machine Learning cơ bản",
		Description: "Khám phá thế giới AI và ML với Python, NumPy, Pandas và Scikit-learn",
		Teachers:    []model.Teacher{{Name: "Dr. Hoàng Minh"}},
		Price:       2499000, CompareAtPrice: 2499000,
		Rating: 4.9, TotalVote: 128,
		Target: model.StringList{
			"Lập trình viên Python",
			"Người quan tâm đến AI/ML",
			"Data Analyst",
		},
		Summary: model.StringList{
			"Nền tảng Python cho Data Science",
			"Phân tích dữ liệu với Pandas",
			"Machine Learning cơ bản",
			"Thực hành với dự án thực tế",
		},
		StudentLimit: 50, AppliedNumber: 42, CurrentStudent: 38,
		CoverIMG:  "/logo.jpg",
		StartDate: "01 02 2024", EndDate: "30 04 2024",
	},
	{
		ID:          "3",
		Name:        "UI/UX Design Masterclass",
		Description: "Học thiết kế giao diện người dùng chuyên nghiệp với Figma và Adobe XD",
		Teachers: []model.Teacher{
			{Name: "Lê Thị Mai"},
			{Name: "Phạm Văn Bình"},
		},
		Price: 899000, CompareAtPrice: 1299000,
		Rating: 4.7, TotalVote: 89,
		Target: model.StringList{
			"Người mới bắt đầu học UI/UX",
			"Graphic Designer",
			"Product Manager",
		},
		Summary: model.StringList{
			"Nguyên lý thiết kế UI/UX",
			"Thành thạo Figma",
			"Design System",
			"Portfolio thực tế",
		},
		StudentLimit: 60, AppliedNumber: 45, CurrentStudent: 40,
		CoverIMG:  "/logo.jpg",
		StartDate: "10 02 2024", EndDate: "10 05 2024",
	},
	{
		ID:          "4",
		Name:        "Advanced React & NextJS Development",
		Description: "Xây dựng ứng dụng web hiện đại với React 18, NextJS 14 và TypeScript",
		Teachers:    []model.Teacher{{Name: "Alex Johnson"}},
		Price:       1799000, CompareAtPrice: 2299000,
		Rating: 4.9, TotalVote: 156,
		Target: model.StringList{
			"React Developer",
			"Frontend Developer",
			"Fullstack Developer",
		},
		Summary: model.StringList{
			"React 18 new features",
			"Server Components",
			"NextJS App Router",
			"Performance Optimization",
		},
		StudentLimit: 80, AppliedNumber: 65, CurrentStudent: 58,
		CoverIMG:  "/logo.jpg",
		StartDate: "20 02 2024", EndDate: "20 05 2024",
	},
	{
		ID:          "5",
		Name:        "DevOps & Cloud Engineering",
		Description: "Làm chủ CI/CD, Docker, Kubernetes và AWS Cloud",
		Teachers: []model.Teacher{
			{Name: "David Nguyen"},
			{Name: "Maria Garcia"},
		},
		Price: 2999000, CompareAtPrice: 3499000,
		Rating: 4.8, TotalVote: 92,
		Target: model.StringList{
			"Backend Developer",
			"System Administrator",
			"DevOps Engineer",
		},
		Summary: model.StringList{
			"CI/CD Pipeline",
			"Container Orchestration",
			"Cloud Architecture",
			"Infrastructure as Code",
		},
		StudentLimit: 40, AppliedNumber: 35, CurrentStudent: 32,
		CoverIMG:  "/logo.jpg",
		StartDate: "05 03 2024", EndDate: "05 06 2024",
	},
}
