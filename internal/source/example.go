package source

// Example is a small quiz in the expected block format.
const Example = `What is the fundamental law of a state called?
Constitution
Decree
Resolution
Order
Statute

How many branches of power are there in a democratic state?
Three
One
Two
Four
Five

Who is the head of state in a presidential republic?
The President
The Prime Minister
The Speaker of Parliament
The Chair of the Senate
The Prosecutor General
`
