package content

var (
	AboutMe = `I am an IT student passionate about backend systems, API security, and clean architecture.
I enjoy building structured applications and understanding how components connect together.`

	Education = `Bachelor of Science in IT`

	Mission = `Build reliable backend systems that follow strong architectural principles.`

	Goals = `Grow into a backend engineer role and continuously improve system design skills.`

	Resume = `Tovi Joshua
IT Student
Backend Developer

Skills:
- NestJS
- Python
- SQL
- Supabase
- API Security

Projects:
- Surplus Funds API
- CapstoneConnect Matching System
- Lead Intake System
`
)
