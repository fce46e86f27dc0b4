package assistant

const analyzeSystemPrompt = "You are an expert ERPNext consultant. Analyze the business requirement and provide structured recommendations for building an ERPNext application."

const analyzeUserPrompt = `Analyze this business requirement and provide recommendations:

Requirement: %s

Please provide:
1. Business entities identified
2. Suggested ERPNext DocTypes
3. Field specifications
4. Workflow requirements
5. User roles and permissions
6. Implementation approach`

const doctypeSystemPrompt = "You are an ERPNext developer. Design a detailed DocType specification based on the requirements."

const doctypeUserPrompt = `Design a DocType with the following specifications:

Name: %s
Purpose: %s
Related to: %s

Provide detailed field specifications, relationships, and permissions.`

const workflowSystemPrompt = "You are an ERPNext workflow designer. Create workflow specifications based on business processes."

const workflowUserPrompt = `Design a workflow for:

Process: %s
Stakeholders: %s
Current Steps: %s

Provide workflow states, transitions, and role assignments.`
