package scoring

// Reference resumes used to synthesize training data, from strongest to
// weakest.
const (
	referenceStrong = `John Doe
Email: john.doe@email.com | Phone: (555) 123-4567
123 Main Street, City, State 12345

PROFESSIONAL SUMMARY
Experienced software engineer with 5+ years developing scalable web applications.
Led cross-functional teams to deliver projects that increased revenue by 30%.
Expert in Python, JavaScript, and cloud technologies.

EXPERIENCE
Senior Software Engineer | Tech Corp | 2020 - Present
• Architected and developed microservices that improved system performance by 40%
• Led team of 5 engineers, reducing deployment time by 50%
• Implemented CI/CD pipelines using Docker and Kubernetes
• Increased code coverage from 60% to 90% through comprehensive testing

Software Engineer | Startup Inc | 2018 - 2020
• Developed RESTful APIs serving 1M+ requests daily
• Optimized database queries, reducing response time by 35%
• Collaborated with product team to deliver features on time

EDUCATION
Bachelor of Science in Computer Science | State University | 2018

SKILLS
Programming: Python, JavaScript, Java, SQL
Technologies: AWS, Docker, Kubernetes, React, Node.js
Tools: Git, Jenkins, JIRA`

	referenceAverage = `Jane Smith
jane.smith@email.com
(555) 987-6543

Summary
Software developer with experience in web development.

Experience
Developer | Company A | 2019 - 2021
• Worked on web applications
• Used Python and JavaScript
• Fixed bugs and added features

Education
BS Computer Science | University | 2019

Skills
Python, JavaScript, HTML, CSS`

	referenceWeak = `Bob Johnson
bob@email.com

I did some work at different places. I made websites and fixed things.
I know how to use computers and write code sometimes.

Work History
• Job 1 - did stuff
• Job 2 - worked there
• Job 3 - another job

Education
Went to school`
)

// qualityTier describes one reference resume and the label distribution
// drawn for its samples: base + uniform[low, high).
type qualityTier struct {
	text      string
	base      float64
	low, high float64
}

var qualityTiers = []qualityTier{
	{text: referenceStrong, base: 85, low: -5, high: 15},
	{text: referenceAverage, base: 60, low: -10, high: 20},
	{text: referenceWeak, base: 35, low: -15, high: 15},
}
