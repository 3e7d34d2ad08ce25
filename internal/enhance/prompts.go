package enhance

// Prompt templates format with fmt.Sprintf.

const improveResumeTemplate = `You are a resume expert. Rewrite the following resume to improve clarity and alignment
with the role of %s. Use a professional tone. Enhance formatting, but keep the same content.

Resume:
%s`

const detectGapsTemplate = `You are a career advisor. Compare the resume to the job description.
List clearly what skills/experience/certifications are missing in the resume:

Resume:
%s

Job Description:
%s`

const suggestSubfieldsTemplate = `You are a learning guide. Given these missing skills: %s,
return for each skill a list of 3-5 key subtopics or subfields the candidate should learn.`
